package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/snapcalc/internal/server"

	"github.com/spf13/cobra"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve calculations over HTTP",
	Long: "Serve the calculator over HTTP.\n\n" +
		"  POST /v1/calculate   raw household fields in, every derived figure out\n" +
		"  GET  /v1/params      parameter table in effect (?as_of=YYYY-MM-DD)\n" +
		"  GET  /healthz        liveness",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	history, err := paramsHistory(cfg)
	if err != nil {
		return err
	}

	addr := flagServeAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	svc := server.New(server.Config{
		Addr:    addr,
		History: history,
		Logger:  log.New(os.Stderr, "snapcalc: ", log.LstdFlags),
	})

	fmt.Printf("  snapcalc listening on http://%s\n", addr)
	fmt.Printf("  Parameter tables: %d (latest %s)\n", len(history), history.Latest().Version)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
