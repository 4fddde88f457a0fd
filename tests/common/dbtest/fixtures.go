//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a status event directly and returns its id
func InsertStatusEvent(t *testing.T, db DBLike, parkingID, status, source string, at time.Time, name, carNo *string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO parking_status (parking_id, status, source, timestamp, name, car_no)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		parkingID, status, source, at, name, carNo,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountStatusEvents(t *testing.T, db DBLike, parkingID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM parking_status WHERE parking_id = $1", parkingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountPayments(t *testing.T, db DBLike, parkingID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM payments WHERE parking_id = $1", parkingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func IdempotencyKeyStatus(t *testing.T, db DBLike, key string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM payment_idempotency_keys WHERE key = $1", key).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table in the public schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
