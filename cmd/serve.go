package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/cgint/vscode-chat-extractor/internal/config"
	"github.com/cgint/vscode-chat-extractor/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversation viewer API",
	Long: `Start an HTTP server exposing the conversation catalog.

  GET /conversations        list of conversation summaries
  GET /conversations/{id}   one conversation with all messages
  GET /health               liveness check

Each request performs its own read-only scan of the store; nothing is cached
and nothing is ever written back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if servePort != "" {
			cfg.HTTPPort = servePort
		}
		if keyPrefix != internal.DefaultKeyPrefix {
			cfg.KeyPrefix = keyPrefix
		}

		// Store-unavailable is fatal at startup: no conversations are
		// served until the operator fixes the path.
		path, err := internal.ResolveStorePath(cfg.DBPath)
		if err != nil {
			return err
		}
		db, err := internal.OpenDatabase(path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		internal.LogInfo("Using database: %s", path)

		srv := &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           server.New(db, cfg.KeyPrefix).Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errChan := make(chan error, 1)
		go func() {
			internal.LogInfo("Listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errChan:
			return fmt.Errorf("server error: %w", err)
		case sig := <-sigChan:
			internal.LogInfo("Received %s, shutting down", sig)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "HTTP port (default from HTTP_PORT or 8080)")
}
