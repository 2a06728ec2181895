package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/statcard/internal/api"
	"github.com/wonny/statcard/internal/api/handlers"
	"github.com/wonny/statcard/internal/external/luogu"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `Start the card HTTP server.

Endpoints:
  GET  /health        - Health check
  GET  /api/practice  - Practice card (id, hide_title, dark_mode, card_width)

Example:
  go run ./cmd/statcard api
  go run ./cmd/statcard api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT env)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if apiPort != "" {
		cfg.Port = apiPort
	}

	luoguClient := luogu.NewClient(cfg, log)
	practiceHandler := handlers.NewPracticeHandler(luoguClient, cfg.Card, log)
	router := api.NewRouter(practiceHandler, log)
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintSuccess(fmt.Sprintf("Server running on http://localhost:%s", cfg.Port))
	PrintList([]string{
		"GET  /health",
		"GET  /api/practice?id=<uid>",
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
