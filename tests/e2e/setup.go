//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parking-monitor/cmd/bootstrap"
	"parking-monitor/cmd/bootstrap/components"
	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/handler"
	"parking-monitor/internal/handler/api"
	"parking-monitor/internal/handler/middleware"
	"parking-monitor/internal/infra/db"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/usecase/shared"
	"parking-monitor/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// fakeGateway approves every charge and counts the calls that reached it.
type fakeGateway struct {
	charges atomic.Int32
	refunds atomic.Int32
	decline atomic.Bool
}

func (g *fakeGateway) Charge(_ context.Context, req *payment.ChargeRequest, _ string) (*shared.GatewayCharge, error) {
	n := g.charges.Add(1)
	status := "successful"
	if g.decline.Load() {
		status = payment.GatewayStatusFailed
	}
	id := fmt.Sprintf("chrg_test_%d", n)
	return &shared.GatewayCharge{
		ID:       id,
		Status:   status,
		Amount:   req.AmountMinor(),
		Currency: req.Currency(),
		Raw: map[string]any{
			"object":   "charge",
			"id":       id,
			"status":   status,
			"amount":   req.AmountMinor(),
			"currency": req.Currency(),
		},
	}, nil
}

func (g *fakeGateway) Refund(_ context.Context, chargeID string) (*shared.GatewayRefund, error) {
	n := g.refunds.Add(1)
	id := fmt.Sprintf("rfnd_test_%d", n)
	return &shared.GatewayRefund{
		ID:       id,
		ChargeID: chargeID,
		Raw:      map[string]any{"object": "refund", "id": id, "charge": chargeID},
	}, nil
}

func (g *fakeGateway) reset() {
	g.charges.Store(0)
	g.refunds.Store(0)
	g.decline.Store(false)
}

type e2eEnv struct {
	pool          *pgxpool.Pool
	statusRouter  *gin.Engine
	paymentRouter *gin.Engine
	gateway       *fakeGateway
	cfg           config.Config
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) e2eEnv {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	env, app := buildE2EApp(pool, dbConfig)
	require.NotNil(t, env.statusRouter, "status router setup failed")
	require.NotNil(t, env.paymentRouter, "payment router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return env
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	return postgresInfo
}

// ------------------------------------------------------------
// Database per test process
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			backoff := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			time.Sleep(backoff)
			slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}

	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "database connection failed")
	require.NotNil(t, pool)
	t.Cleanup(cleanup)

	require.NoError(t, db.EnsureSchema(ctx, pool), "failed to apply schema")

	return pool, dbConfig
}

// ------------------------------------------------------------
// Both HTTP services share one fx graph, each on its own engine
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (e2eEnv, *fx.App) {
	env := e2eEnv{pool: pool, gateway: &fakeGateway{}}

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dbConfig)
		}),
	)

	testGatewayModule := fx.Module("testgateway",
		fx.Provide(func() shared.PaymentGateway { return env.gateway }),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		testGatewayModule,
		bootstrap.LoggerModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.PaymentUseCaseModule,
		components.StatusHandlerModule,
		components.PaymentHandlerModule,

		fx.Invoke(func(cfg config.Config, logger *middleware.Logger, parking *api.ParkingHandler, live *api.LiveHandler, payments *api.PaymentHandler) {
			env.cfg = cfg
			env.statusRouter = gin.New()
			handler.NewStatusRouter(env.statusRouter, cfg, logger, parking, live)
			env.paymentRouter = gin.New()
			handler.NewPaymentRouter(env.paymentRouter, cfg, logger, payments)
		}),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return env, app
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the PostgreSQL container once per process
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "parking-monitor-e2e"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	StatusRouter  *gin.Engine
	PaymentRouter *gin.Engine
	Gateway       *fakeGateway
	DB            *pgxpool.Pool
	Config        config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.StatusRouter = env.statusRouter
	s.PaymentRouter = env.paymentRouter
	s.Gateway = env.gateway
	s.Config = env.cfg
	require.NotNil(t, s.DB, "database setup failed")
	require.NotEmpty(t, s.Config, "config setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	s.resetState()
}

func (s *SharedSuite) SetupSubTest() {
	s.resetState()
}

func (s *SharedSuite) resetState() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
	s.Gateway.reset()
}
