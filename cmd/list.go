package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/types"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List phases in canonical curriculum order",
	Long: `List the registered phases with their metadata, in exactly the order
the corpus supplies them. Phase ordering is the curriculum sequence and
is never re-sorted.

Examples:
  curricula list                  # List phases in table format
  curricula list -f json          # Output as JSON
  curricula list -f yaml          # Output as YAML
  curricula list -t               # Include each phase's topics`,
	RunE: runList,
}

var (
	listFlags      *StandardFlags
	listWithTopics bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "table", "json", "yaml")

	listCmd.Flags().
		BoolVarP(&listWithTopics, "topics", "t", false, "Include each phase's topics")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := listFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	reg, _, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	phases := reg.Phases()
	if len(phases) == 0 {
		fmt.Println("No phases found.")
		return nil
	}

	switch strings.ToLower(listFlags.Format) {
	case "json":
		return outputListJSON(phases)
	case "yaml":
		return outputListYAML(phases)
	case "table":
		return outputListTable(reg, phases)
	default:
		return fmt.Errorf("unsupported format: %s", listFlags.Format)
	}
}

func listItem(phase *types.Phase) map[string]interface{} {
	item := map[string]interface{}{
		"id":     phase.ID,
		"title":  phase.Title,
		"emoji":  phase.Emoji,
		"topics": len(phase.Topics),
	}

	if listWithTopics {
		topics := make([]map[string]string, len(phase.Topics))
		for i, topic := range phase.Topics {
			topics[i] = map[string]string{
				"id":    topic.ID,
				"title": topic.Title,
			}
		}
		item["topic_list"] = topics
	}

	return item
}

func outputListJSON(phases []*types.Phase) error {
	output := make([]map[string]interface{}, len(phases))
	for i, phase := range phases {
		output[i] = listItem(phase)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputListYAML(phases []*types.Phase) error {
	output := make([]map[string]interface{}, len(phases))
	for i, phase := range phases {
		output[i] = listItem(phase)
	}

	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(output)
}

func outputListTable(reg *registry.Registry, phases []*types.Phase) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tTITLE\tTOPICS")
	fmt.Fprintln(w, "--\t-----\t------")

	for _, phase := range phases {
		fmt.Fprintf(w, "%s\t%s %s\t%d\n",
			phase.ID,
			phase.Emoji,
			phase.Title,
			len(phase.Topics),
		)

		if listWithTopics {
			for _, topic := range phase.Topics {
				fmt.Fprintf(w, "  %s\t%s\t\n", topic.ID, topic.Title)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d phases, %d topics\n", reg.PhaseCount(), reg.TopicCount())

	return nil
}
