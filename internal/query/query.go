// Package query is the read surface consumed by presentation layers:
// topic search, question-bank filtering, and linear lesson navigation.
// Every operation is a synchronous scan or lookup over data already
// resident in the registry.
package query

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/types"
)

// QuestionRef resolves an interview question to its topic and phase.
type QuestionRef struct {
	Phase    *types.Phase
	Topic    *types.Topic
	Question *types.InterviewQuestion
}

// Neighbors holds the previous and next topics in the canonical
// curriculum sequence. Either side is nil at the corpus boundaries.
type Neighbors struct {
	Previous *registry.TopicRef
	Next     *registry.TopicRef
}

// Search returns a lazy sequence of topics whose title or explanation
// contains the term, case-insensitively. The sequence is finite and
// restartable: each range over it re-scans the registry, and no cursor
// state survives between iterations. An empty term matches nothing.
func Search(reg *registry.Registry, term string) iter.Seq[registry.TopicRef] {
	return func(yield func(registry.TopicRef) bool) {
		if strings.TrimSpace(term) == "" {
			return
		}

		// cases.Caser carries internal state, so each iteration gets
		// its own instance.
		folder := cases.Fold()
		folded := folder.String(term)

		for _, ref := range reg.Topics() {
			if !strings.Contains(folder.String(ref.Topic.Title), folded) &&
				!strings.Contains(folder.String(ref.Topic.Explanation), folded) {
				continue
			}
			if !yield(ref) {
				return
			}
		}
	}
}

// ListByType returns every interview question of the given type, in
// canonical order, for building filtered question banks.
func ListByType(reg *registry.Registry, questionType types.QuestionType) []QuestionRef {
	result := make([]QuestionRef, 0)
	for _, ref := range reg.Topics() {
		for i := range ref.Topic.InterviewQuestions {
			question := &ref.Topic.InterviewQuestions[i]
			if question.Type != questionType {
				continue
			}
			result = append(result, QuestionRef{
				Phase:    ref.Phase,
				Topic:    ref.Topic,
				Question: question,
			})
		}
	}

	return result
}

// Adjacent returns the previous and next topics around the first
// registered occurrence of topicID, following the canonical order.
// The second return value is false when the topic id is unknown.
func Adjacent(reg *registry.Registry, topicID string) (Neighbors, bool) {
	ref, exists := reg.Topic(topicID)
	if !exists {
		return Neighbors{}, false
	}

	pos, exists := reg.TopicIndex(ref.Topic)
	if !exists {
		return Neighbors{}, false
	}

	topics := reg.Topics()
	var neighbors Neighbors
	if pos > 0 {
		prev := topics[pos-1]
		neighbors.Previous = &prev
	}
	if pos < len(topics)-1 {
		next := topics[pos+1]
		neighbors.Next = &next
	}

	return neighbors, true
}
