package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	Format  string
	Verbose bool
	Quiet   bool
}

// AddStandardFlags adds the shared output flags to a command
func AddStandardFlags(cmd *cobra.Command, formats ...string) *StandardFlags {
	flags := &StandardFlags{}

	usage := "Output format (" + strings.Join(formats, "|") + ")"
	cmd.Flags().StringVarP(&flags.Format, "format", "f", formats[0], usage)
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")

	AddFlagValidation(cmd, "format", func(format string) error {
		return ValidateFormatWithSuggestion(format, formats)
	})

	return flags
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.Quiet && f.Verbose {
		return fmt.Errorf("cannot specify both --quiet and --verbose")
	}

	return nil
}

// ValidateFormatWithSuggestion rejects unknown output formats, pointing
// at the closest known one when the input looks like a typo.
func ValidateFormatWithSuggestion(format string, valid []string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}

	for _, v := range valid {
		if strings.HasPrefix(v, strings.ToLower(format)) {
			return fmt.Errorf("invalid format %q, did you mean %q?", format, v)
		}
	}

	return fmt.Errorf("invalid format %q, must be one of: %s", format, strings.Join(valid, ", "))
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	originalSet := flag.Value.Set

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}
