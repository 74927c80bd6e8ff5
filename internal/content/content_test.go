package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/types"
)

func TestEmbedded_CorpusLoadsClean(t *testing.T) {
	modules, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, modules)

	reg, report, err := registry.Load(modules)
	require.NoError(t, err, "shipping corpus must validate clean")
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Warnings, "shipping corpus should carry no warnings")

	// The corpus spans the expected domains.
	for _, id := range []string{"android-1", "react-native-1", "typescript-1", "dsa-1", "salesforce-1"} {
		_, exists := reg.Phase(id)
		assert.True(t, exists, "missing phase %s", id)
	}
}

func TestEmbedded_DeterministicOrder(t *testing.T) {
	first, err := Embedded()
	require.NoError(t, err)
	second, err := Embedded()
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}

	// Filename order is the canonical curriculum sequence.
	assert.Equal(t, "01-android-fundamentals", first[0].Name)
}

func TestEmbedded_BareModuleSynthesized(t *testing.T) {
	modules, err := Embedded()
	require.NoError(t, err)

	var bare *types.Module
	for i := range modules {
		if modules[i].Shape == types.ShapeTopicList {
			bare = &modules[i]
			break
		}
	}
	require.NotNil(t, bare, "corpus should contain a bare topic-list module")

	phase := bare.Normalize()
	assert.Equal(t, bare.Name, phase.ID)
	require.Len(t, phase.Topics, len(bare.Topics))
	for i := range phase.Topics {
		assert.Equal(t, bare.Topics[i].ID, phase.Topics[i].ID)
	}
}

func TestDecode_PhaseShape(t *testing.T) {
	data := []byte(`
id: phase-1
title: Test Phase
topics:
  - id: t1
    title: Topic One
    explanation: Something.
`)

	module, err := Decode("test-module", data)

	require.NoError(t, err)
	assert.Equal(t, "test-module", module.Name)
	assert.Equal(t, types.ShapePhase, module.Shape)
	assert.Equal(t, "phase-1", module.Phase.ID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("broken", []byte("{{not yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	phaseDoc := `
id: phase-1
title: Phase One
topics:
  - id: t1
    title: Topic One
    explanation: Something.
`
	bareDoc := `
- id: t2
  title: Topic Two
  explanation: Something else.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01-one.yaml"), []byte(phaseDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02-two.yml"), []byte(bareDoc), 0o644))
	// Non-module files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	modules, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	assert.Equal(t, "01-one", modules[0].Name)
	assert.Equal(t, types.ShapePhase, modules[0].Shape)
	assert.Equal(t, "02-two", modules[1].Name)
	assert.Equal(t, types.ShapeTopicList, modules[1].Shape)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Error(t, err)
}

func TestLoadDir_MalformedModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("{{nope"), 0o644))

	_, err := LoadDir(dir)

	assert.Error(t, err)
}
