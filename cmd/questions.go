package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/query"
	"github.com/conneroisu/curricula/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:     "questions",
	Aliases: []string{"q"},
	Short:   "Build a question bank filtered by interview question type",
	Long: `Collect every interview question of one type across the whole corpus,
in canonical curriculum order.

Known types: conceptual, coding, tricky, scenario, meta, behavioral.

Examples:
  curricula questions -t coding
  curricula questions -t behavioral -f json`,
	RunE: runQuestions,
}

var (
	questionsFlags *StandardFlags
	questionsType  string
)

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsFlags = AddStandardFlags(questionsCmd, "text", "json")
	questionsCmd.Flags().
		StringVarP(&questionsType, "type", "t", "", "Question type to collect (required)")
	questionsCmd.MarkFlagRequired("type")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := questionsFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	questionType := types.QuestionType(questionsType)
	if !questionType.Valid() {
		known := make([]string, 0)
		for _, t := range types.QuestionTypes() {
			known = append(known, string(t))
		}
		return fmt.Errorf("unknown question type %q, must be one of: %s",
			questionsType, strings.Join(known, ", "))
	}

	reg, _, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	refs := query.ListByType(reg, questionType)
	if len(refs) == 0 {
		fmt.Printf("No %s questions in the corpus.\n", questionType)
		return nil
	}

	switch strings.ToLower(questionsFlags.Format) {
	case "json":
		return outputQuestionsJSON(refs)
	default:
		return outputQuestionsText(refs)
	}
}

func outputQuestionsJSON(refs []query.QuestionRef) error {
	output := make([]map[string]string, len(refs))
	for i, ref := range refs {
		output[i] = map[string]string{
			"phase_id": ref.Phase.ID,
			"topic_id": ref.Topic.ID,
			"type":     string(ref.Question.Type),
			"q":        ref.Question.Q,
			"a":        ref.Question.A,
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputQuestionsText(refs []query.QuestionRef) error {
	for i, ref := range refs {
		fmt.Printf("%d. [%s / %s]\n", i+1, ref.Phase.ID, ref.Topic.ID)
		fmt.Printf("   Q: %s\n", strings.TrimSpace(ref.Question.Q))
		fmt.Printf("   A: %s\n\n", strings.TrimSpace(ref.Question.A))
	}
	fmt.Printf("Total: %d questions\n", len(refs))

	return nil
}
