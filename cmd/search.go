package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/query"
	"github.com/conneroisu/curricula/internal/registry"
)

var searchCmd = &cobra.Command{
	Use:     "search <term>",
	Aliases: []string{"s"},
	Short:   "Search topics by title and explanation",
	Long: `Search topic titles and explanations for a term, case-insensitively.

Examples:
  curricula search closures
  curricula search "governor limits" -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var searchFlags *StandardFlags

func init() {
	rootCmd.AddCommand(searchCmd)
	searchFlags = AddStandardFlags(searchCmd, "table", "json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := searchFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	reg, _, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	term := args[0]
	matches := make([]registry.TopicRef, 0)
	for ref := range query.Search(reg, term) {
		matches = append(matches, ref)
	}

	if len(matches) == 0 {
		fmt.Printf("No topics match %q.\n", term)
		return nil
	}

	switch strings.ToLower(searchFlags.Format) {
	case "json":
		return outputSearchJSON(matches)
	default:
		return outputSearchTable(matches)
	}
}

func outputSearchJSON(matches []registry.TopicRef) error {
	output := make([]map[string]string, len(matches))
	for i, ref := range matches {
		output[i] = map[string]string{
			"phase_id": ref.Phase.ID,
			"topic_id": ref.Topic.ID,
			"title":    ref.Topic.Title,
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputSearchTable(matches []registry.TopicRef) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PHASE\tTOPIC\tTITLE")
	for _, ref := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ref.Phase.ID, ref.Topic.ID, ref.Topic.Title)
	}
	fmt.Fprintf(w, "\nTotal: %d topics\n", len(matches))

	return nil
}
