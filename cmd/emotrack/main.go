package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/emotrack/internal/cli"
	"github.com/terraincognita07/emotrack/internal/config"
	"github.com/terraincognita07/emotrack/internal/db"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	var email string
	resetPasswordCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace a user's password with a random temporary one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return cli.RunResetPasswordCommand(cfg.DBPath, email, cfg.BcryptCost, cmd.OutOrStdout())
		},
	}
	resetPasswordCmd.Flags().StringVar(&email, "email", "", "email of the account to reset")
	_ = resetPasswordCmd.MarkFlagRequired("email")

	rootCmd := &cobra.Command{
		Use:          "emotrack",
		Short:        "Wellbeing tracker API: diaries, emotions, assessments and support centers.",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	rootCmd.AddCommand(serveCmd, resetPasswordCmd)
	return rootCmd
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenSQLiteWithOptions(cfg.DBPath, db.SQLiteOptions{LogLevel: cfg.DBLogLevel})
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApp(cfg, database, registry)
	if err != nil {
		log.Fatalf("app init failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Emotrack listening on http://0.0.0.0:%s (db: %s, alg: %s, token ttl: %s)", cfg.Port, cfg.DBPath, cfg.Algorithm, cfg.TokenTTL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
	return nil
}
