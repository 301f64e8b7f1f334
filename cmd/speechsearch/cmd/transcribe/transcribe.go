package transcribe

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"speech-search/internal/api/v1/dto"
	"speech-search/internal/app"
	"speech-search/internal/app/batch"
	"speech-search/internal/app/search"
	"speech-search/internal/config"
)

var (
	language     string
	query        string
	xlsxPath     string
	parallel     int
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the audio (default from config, english)")
	Cmd.Flags().StringVarP(&query, "search", "s", "", "Search the batch's transcripts afterwards, ignoring case")
	Cmd.Flags().StringVarP(&xlsxPath, "xlsx", "o", "", "Write one row per file to this Excel file")
	Cmd.Flags().IntVarP(&parallel, "parallel", "j", 2, "Files transcribed at the same time")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "Force progress bars even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe FILE...",
	Short: "Transcribe local audio files through the configured ASR service",
	Long: `Transcribe local audio files through the configured ASR service

- Each file is sent to the ASR service once; non-empty transcripts are stored
- --search runs a case-insensitive search over the stored transcripts
- --xlsx exports the per-file results to Excel`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadWithEnv(configPath)
		if err != nil {
			return err
		}

		progress := batch.NewProgressManager(batch.ProgressConfig{
			Enabled: batch.ShouldShowProgress(showProgress),
			Writer:  cmd.ErrOrStderr(),
		})

		b, cleanup, err := app.InitializeBatch(cfg, progress)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		items := b.Runner.Run(ctx, args, language, parallel)

		out := cmd.OutOrStdout()
		for _, item := range items {
			switch {
			case item.Err != nil:
				fmt.Fprintf(out, "FAIL  %s: %v\n", item.Path, item.Err)
			case item.Stored():
				fmt.Fprintf(out, "OK    %s [%s] %s\n", item.Path, item.Outcome.Record.ID, item.Outcome.Transcript)
			default:
				fmt.Fprintf(out, "EMPTY %s\n", item.Path)
			}
		}

		summary := batch.Summarize(items)
		fmt.Fprintf(out, "\n%d files: %d stored, %d empty, %d failed\n",
			summary.Total, summary.Stored, summary.Empty, summary.Failed)

		if xlsxPath != "" {
			if err := batch.ToExcel(items, xlsxPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "export finished, exported file path: %v\n", xlsxPath)
		}

		if query != "" {
			matches, err := b.Engine.Search(ctx, query)
			if err != nil {
				return err
			}
			response := dto.NewSearchResponse(search.NormalizeQuery(query), matches)
			fmt.Fprintf(out, "\n%d matches for %q\n", response.Count, response.Query)
			for _, match := range response.Results {
				fmt.Fprintf(out, "  %s  %s  %s\n", match.ID, match.Timestamp, match.Text)
			}
		}

		if summary.Failed == summary.Total {
			return fmt.Errorf("all %d files failed", summary.Total)
		}
		return nil
	},
}
