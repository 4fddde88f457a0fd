package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"parking-monitor/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var Version = "dev"

func init() {
	// fail safe: never expose debug routes because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           parking-monitor
// @version         1.0
// @description     Parking lot status, booking and payment APIs

// @BasePath  /
// @schemes http https
func main() {
	rootCmd := &cobra.Command{
		Use:     "parking-monitor",
		Short:   "Parking lot monitoring: sensor simulator, status recorder, dashboard and payments",
		Version: Version,
	}

	rootCmd.AddCommand(serviceCmd("status", "Serve the status dashboard, booking API and live feed", bootstrap.StatusModule))
	rootCmd.AddCommand(serviceCmd("payment", "Serve the payment API", bootstrap.PaymentModule))
	rootCmd.AddCommand(serviceCmd("simulator", "Publish mock sensor readings for every free space", bootstrap.SimulatorAppModule))
	rootCmd.AddCommand(serviceCmd("recorder", "Store sensor readings consumed from the bus", bootstrap.RecorderAppModule))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serviceCmd(use, short string, module fx.Option) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(fx.New(module))
		},
	}
}

func run(app *fx.App) error {
	if err := app.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		// keep the exit code of the shutdown signal
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped", "exit_code", sig.ExitCode)
	if sig.ExitCode != 0 {
		return fmt.Errorf("exited with code %d", sig.ExitCode)
	}
	return nil
}
