package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/errors"
	"github.com/conneroisu/curricula/internal/validate"
)

var validateFlags *StandardFlags

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"v"},
	Short:   "Validate the content corpus and report every finding",
	Long: `Validate the full content corpus for authoring errors:

- Duplicate phase ids across modules
- Topic ids reused across phases (data-quality warning)
- Topics missing a title or explanation, phases with no topics
- Interview question types outside the controlled vocabulary
- Unbalanced code fence markers in code examples

The whole battery runs in one pass and every finding is reported at
once. The command exits non-zero only when error-severity findings
exist, so CI can gate publishing on it while warnings stay advisory.

Examples:
  curricula validate                  # Validate the embedded corpus
  curricula validate --dir content    # Validate an authoring directory
  curricula validate -f json          # Machine-readable report for CI`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateFlags = AddStandardFlags(validateCmd, "text", "json")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validateFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	_, report, loadErr := loadRegistry(cfg)
	if loadErr != nil {
		if _, ok := errors.IsLoadError(loadErr); !ok {
			// Corpus could not even be read or decoded.
			return loadErr
		}
	}

	switch validateFlags.Format {
	case "json":
		if err := outputReportJSON(report); err != nil {
			return err
		}
	default:
		outputReportText(report)
	}

	if report.HasErrors() {
		return fmt.Errorf("validation failed: %s", report.Summary())
	}

	return nil
}

func outputReportJSON(report *validate.Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}

func outputReportText(report *validate.Report) {
	errLabel := color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel := color.New(color.FgYellow).SprintFunc()
	okLabel := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("Validation Summary: %s\n\n", report.Summary())

	for _, finding := range report.Errors {
		fmt.Printf("%s [%s] %s\n", errLabel("error"), finding.Check, finding.Message)
		printFindingLocation(finding)
	}

	for _, finding := range report.Warnings {
		fmt.Printf("%s [%s] %s\n", warnLabel("warning"), finding.Check, finding.Message)
		printFindingLocation(finding)
	}

	if !report.HasErrors() {
		if len(report.Warnings) > 0 {
			fmt.Printf("\n%s corpus is loadable (warnings are advisory)\n", okLabel("ok:"))
		} else {
			fmt.Printf("%s corpus is clean\n", okLabel("ok:"))
		}
	}
}

func printFindingLocation(finding validate.Finding) {
	if finding.Module == "" && finding.PhaseID == "" && finding.TopicID == "" {
		return
	}

	location := ""
	if finding.Module != "" {
		location += "module=" + finding.Module + " "
	}
	if finding.PhaseID != "" {
		location += "phase=" + finding.PhaseID + " "
	}
	if finding.TopicID != "" {
		location += "topic=" + finding.TopicID
	}
	fmt.Printf("    %s\n", location)
}
