package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/statcard/pkg/config"
	"github.com/wonny/statcard/pkg/logger"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statcard",
	Short: "Luogu 연습 통계 SVG 카드",
	Long: `statcard renders Luogu practice statistics as SVG cards.

Usage:
  go run ./cmd/statcard [command]

Examples:
  go run ./cmd/statcard api --port 8080
  go run ./cmd/statcard fetch 1
  go run ./cmd/statcard render 1 --out card.svg --dark-mode`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads config and creates the logger shared by all commands
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}
