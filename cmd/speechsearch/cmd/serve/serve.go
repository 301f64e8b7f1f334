package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"speech-search/internal/app"
	"speech-search/internal/config"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port, overrides config and SPEECH_SEARCH_PORT")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API

- POST /api/transcribe uploads audio (form fields audio_file, language)
- GET /api/search?q= searches stored transcripts, ignoring case
- GET /api/transcriptions and /api/transcriptions/{id} read them back
- The same routes are also served under /api/v1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadWithEnv(configPath)
		if err != nil {
			return err
		}
		if port != "" {
			if err := config.ValidatePort(port); err != nil {
				return err
			}
			cfg.Server.Port = port
		}

		srv, cleanup, err := app.InitializeServer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errs := srv.Start()
		select {
		case err, ok := <-errs:
			if ok && err != nil {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		return srv.Shutdown(context.Background())
	},
}
