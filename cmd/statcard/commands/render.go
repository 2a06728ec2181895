package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/statcard/internal/external/luogu"
	"github.com/wonny/statcard/internal/practice"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <uid>",
	Short: "연습 카드 SVG 생성",
	Long: `Fetch a Luogu user's statistics and write the practice card as SVG.

Example:
  go run ./cmd/statcard render 1
  go run ./cmd/statcard render 1 --out card.svg --width 600 --dark-mode`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOut       string
	renderHideTitle bool
	renderDarkMode  bool
	renderWidth     int
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderHideTitle, "hide-title", false, "hide the title bar")
	renderCmd.Flags().BoolVar(&renderDarkMode, "dark-mode", false, "dark theme")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "card width (default: CARD_DEFAULT_WIDTH)")
}

func runRender(cmd *cobra.Command, args []string) error {
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stats, err := luogu.NewClient(cfg, log).FetchStats(cmd.Context(), id)
	if err != nil {
		return err
	}

	width := renderWidth
	if width <= 0 {
		width = cfg.Card.DefaultWidth
	}

	markup := practice.RenderSVG(stats, practice.Options{
		HideTitle: renderHideTitle,
		DarkMode:  renderDarkMode,
		CardWidth: width,
	})

	if renderOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), markup)
		return err
	}

	if err := os.WriteFile(renderOut, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}
	PrintSuccess(fmt.Sprintf("Card written to %s", renderOut))
	return nil
}
