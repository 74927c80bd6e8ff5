package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/types"
)

func fixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	modules := []types.Module{
		{
			Name:  "typescript",
			Shape: types.ShapePhase,
			Phase: types.Phase{
				ID:    "typescript-1",
				Title: "TypeScript",
				Topics: []types.Topic{
					{
						ID:          "closures-lexical-scope",
						Title:       "Closures and Lexical Scope",
						Explanation: "A closure is a function bundled with its lexical environment.",
						InterviewQuestions: []types.InterviewQuestion{
							{Type: types.QuestionConceptual, Q: "What is captured?", A: "The binding."},
							{Type: types.QuestionCoding, Q: "Fix the loop.", A: "Use let."},
						},
					},
				},
			},
		},
		{
			Name:  "dsa",
			Shape: types.ShapePhase,
			Phase: types.Phase{
				ID:    "dsa-1",
				Title: "DSA",
				Topics: []types.Topic{
					{
						ID:          "big-o-notation",
						Title:       "Big-O Notation",
						Explanation: "Big-O describes growth with input size.",
						InterviewQuestions: []types.InterviewQuestion{
							{Type: types.QuestionCoding, Q: "Bound binary search.", A: "O(log n)."},
						},
					},
					{
						ID:          "hash-tables",
						Title:       "Hash Tables",
						Explanation: "Average O(1) lookup by hashing keys into buckets.",
					},
				},
			},
		},
	}

	reg, _, err := registry.Load(modules)
	require.NoError(t, err)

	return reg
}

func collect(t *testing.T, reg *registry.Registry, term string) []string {
	t.Helper()

	ids := make([]string, 0)
	for ref := range Search(reg, term) {
		ids = append(ids, ref.Topic.ID)
	}

	return ids
}

func TestSearch_MatchesTitleAndExcludesUnrelated(t *testing.T) {
	reg := fixtureRegistry(t)

	ids := collect(t, reg, "closure")

	assert.Contains(t, ids, "closures-lexical-scope")
	assert.NotContains(t, ids, "big-o-notation")
}

func TestSearch_CaseInsensitive(t *testing.T) {
	reg := fixtureRegistry(t)

	assert.Equal(t, collect(t, reg, "CLOSURE"), collect(t, reg, "closure"))
	assert.Contains(t, collect(t, reg, "big-o"), "big-o-notation")
}

func TestSearch_MatchesExplanation(t *testing.T) {
	reg := fixtureRegistry(t)

	// "buckets" only appears in the hash-tables explanation.
	ids := collect(t, reg, "buckets")

	assert.Equal(t, []string{"hash-tables"}, ids)
}

func TestSearch_EmptyTermMatchesNothing(t *testing.T) {
	reg := fixtureRegistry(t)

	assert.Empty(t, collect(t, reg, ""))
	assert.Empty(t, collect(t, reg, "   "))
}

func TestSearch_Restartable(t *testing.T) {
	reg := fixtureRegistry(t)
	seq := Search(reg, "o")

	first := make([]string, 0)
	for ref := range seq {
		first = append(first, ref.Topic.ID)
	}

	// A fresh range over the same sequence re-scans from the start.
	second := make([]string, 0)
	for ref := range seq {
		second = append(second, ref.Topic.ID)
	}

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestSearch_EarlyStop(t *testing.T) {
	reg := fixtureRegistry(t)

	count := 0
	for range Search(reg, "o") {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestListByType(t *testing.T) {
	reg := fixtureRegistry(t)

	coding := ListByType(reg, types.QuestionCoding)
	require.Len(t, coding, 2)
	// Canonical order: typescript phase precedes dsa.
	assert.Equal(t, "closures-lexical-scope", coding[0].Topic.ID)
	assert.Equal(t, "big-o-notation", coding[1].Topic.ID)

	conceptual := ListByType(reg, types.QuestionConceptual)
	require.Len(t, conceptual, 1)
	assert.Equal(t, "typescript-1", conceptual[0].Phase.ID)

	assert.Empty(t, ListByType(reg, types.QuestionBehavioral))
}

func TestAdjacent_MiddleTopic(t *testing.T) {
	reg := fixtureRegistry(t)

	neighbors, ok := Adjacent(reg, "big-o-notation")

	require.True(t, ok)
	require.NotNil(t, neighbors.Previous)
	require.NotNil(t, neighbors.Next)
	assert.Equal(t, "closures-lexical-scope", neighbors.Previous.Topic.ID)
	assert.Equal(t, "hash-tables", neighbors.Next.Topic.ID)
}

func TestAdjacent_Boundaries(t *testing.T) {
	reg := fixtureRegistry(t)

	first, ok := Adjacent(reg, "closures-lexical-scope")
	require.True(t, ok)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, "big-o-notation", first.Next.Topic.ID)

	last, ok := Adjacent(reg, "hash-tables")
	require.True(t, ok)
	assert.Nil(t, last.Next)
	require.NotNil(t, last.Previous)
}

func TestAdjacent_UnknownTopic(t *testing.T) {
	reg := fixtureRegistry(t)

	_, ok := Adjacent(reg, "missing")

	assert.False(t, ok)
}
