package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormatWithSuggestion(t *testing.T) {
	valid := []string{"table", "json", "yaml"}

	assert.NoError(t, ValidateFormatWithSuggestion("table", valid))
	assert.NoError(t, ValidateFormatWithSuggestion("yaml", valid))

	err := ValidateFormatWithSuggestion("jso", valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "json"`)

	err = ValidateFormatWithSuggestion("xml", valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: table, json, yaml")
}

func TestStandardFlags_ValidateFlags(t *testing.T) {
	flags := &StandardFlags{Verbose: true, Quiet: true}
	assert.Error(t, flags.ValidateFlags())

	flags = &StandardFlags{Verbose: true}
	assert.NoError(t, flags.ValidateFlags())
}

func TestAddStandardFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	flags := AddStandardFlags(cmd, "text", "json")

	assert.Equal(t, "text", flags.Format, "first format is the default")

	require.NoError(t, cmd.Flags().Set("format", "json"))
	assert.Equal(t, "json", flags.Format)

	err := cmd.Flags().Set("format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
