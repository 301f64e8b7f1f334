package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"speech-search/cmd/speechsearch/cmd/serve"
	"speech-search/cmd/speechsearch/cmd/transcribe"
	"speech-search/cmd/speechsearch/cmd/version"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechsearch",
	Short: "Transcribe audio through an ASR service and search the transcripts",
	Long: `Transcribe audio through an ASR service and search the transcripts.

- serve runs the HTTP API (upload, search, list, get)
- transcribe runs local files through the same pipeline from the command line
- Transcripts live in memory and are gone when the process exits.`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults and SPEECH_SEARCH_* variables apply without one)")
}
