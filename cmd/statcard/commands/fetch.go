package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/statcard/internal/external/luogu"
	"github.com/wonny/statcard/internal/practice"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <uid>",
	Short: "Luogu 통계 조회",
	Long: `Fetch and print the normalized practice statistics of a Luogu user.

Example:
  go run ./cmd/statcard fetch 1`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
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

	printStats(cmd.OutOrStdout(), stats)
	return nil
}

func parseUserID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid uid %q: must be a positive integer", raw)
	}
	return id, nil
}

func printStats(w io.Writer, stats luogu.Stats) {
	PrintDoubleSeparator(w)
	PrintKeyValue(w, "Name", stats.Name, 10)
	PrintKeyValue(w, "Color", stats.Color, 10)
	PrintKeyValue(w, "CCF Level", strconv.Itoa(stats.CCFLevel), 10)
	PrintKeyValue(w, "Tag", stats.Tag, 10)
	PrintKeyValue(w, "Hidden", strconv.FormatBool(stats.HideInfo), 10)
	PrintSeparator(w)

	if stats.HideInfo {
		fmt.Fprintln(w, practice.HiddenMessage)
		return
	}

	widths := []int{16, 6}
	PrintTableHeader(w, []string{"Tier", "Count"}, widths)
	for i, label := range practice.TierLabels() {
		PrintTableRow(w, []string{label, strconv.Itoa(stats.Passed[i])}, widths)
	}
	PrintTableRow(w, []string{practice.AttemptedLabel(), strconv.Itoa(stats.Unpassed)}, widths)
	PrintSeparator(w)
	PrintKeyValue(w, "Passed", strconv.Itoa(stats.PassedSum()), 10)
}
