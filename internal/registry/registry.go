// Package registry aggregates independently authored phase modules
// into one immutable, validated, queryable knowledge base.
//
// A Registry is built once by Load and never mutated afterwards, so it
// can be shared across any number of concurrent readers without locks.
// Content updates go through rebuild-and-swap (see Store), never
// in-place mutation of a live Registry.
package registry

import (
	"github.com/conneroisu/curricula/internal/errors"
	"github.com/conneroisu/curricula/internal/types"
	"github.com/conneroisu/curricula/internal/validate"
)

// TopicRef resolves a topic to its owning phase. The pointers refer
// into registry-owned data and must be treated as read-only.
type TopicRef struct {
	Phase *types.Phase
	Topic *types.Topic
}

// Registry is the process-wide aggregate of all phases and topics.
type Registry struct {
	phases    []types.Phase // canonical input order, normalized
	modules   []string      // source module name per phase, parallel to phases
	phaseByID map[string]int

	topics    []TopicRef // flattened canonical order
	topicByID map[string][]int // indices into topics, registration order
	topicPos  map[*types.Topic]int
}

// Load aggregates the full ordered sequence of phase modules into a
// Registry and runs the corpus-wide validation battery. The report is
// always returned so the build pipeline can surface warnings; the
// Registry is nil and the error a *errors.LoadError only when one or
// more error-severity findings exist.
func Load(modules []types.Module) (*Registry, *validate.Report, error) {
	if len(modules) == 0 {
		return nil, nil, errors.NewContentError(
			errors.ErrCodeEmptyCorpus,
			"module list is empty",
		)
	}

	reg := &Registry{
		phases:    make([]types.Phase, 0, len(modules)),
		modules:   make([]string, 0, len(modules)),
		phaseByID: make(map[string]int, len(modules)),
		topicByID: make(map[string][]int),
		topicPos:  make(map[*types.Topic]int),
	}

	entries := make([]validate.Entry, 0, len(modules))
	for _, module := range modules {
		phase := module.Normalize()
		reg.phases = append(reg.phases, phase)
		reg.modules = append(reg.modules, module.Name)
		entries = append(entries, validate.Entry{Module: module.Name, Phase: phase})
	}

	reg.buildIndices()

	report := validate.Corpus(entries)
	if report.HasErrors() {
		return nil, report, errors.NewLoadError(report)
	}

	return reg, report, nil
}

// buildIndices derives the lookup maps from the ordered phase slice.
// Duplicate ids keep their first occurrence: registration order equals
// input module order, which makes duplicate resolution deterministic.
func (r *Registry) buildIndices() {
	for i := range r.phases {
		phase := &r.phases[i]
		if _, exists := r.phaseByID[phase.ID]; !exists {
			r.phaseByID[phase.ID] = i
		}

		for j := range phase.Topics {
			topic := &phase.Topics[j]
			pos := len(r.topics)
			r.topics = append(r.topics, TopicRef{Phase: phase, Topic: topic})
			r.topicByID[topic.ID] = append(r.topicByID[topic.ID], pos)
			r.topicPos[topic] = pos
		}
	}
}

// Phase retrieves a phase by id. Absence is an expected condition for
// callers, so it is reported as a boolean, not an error.
func (r *Registry) Phase(id string) (*types.Phase, bool) {
	i, exists := r.phaseByID[id]
	if !exists {
		return nil, false
	}

	return &r.phases[i], true
}

// Topic resolves a topic id to its owning phase. When the same id
// appears under multiple phases it returns the first registered
// occurrence; callers needing all occurrences use FindAllTopics.
func (r *Registry) Topic(id string) (TopicRef, bool) {
	positions, exists := r.topicByID[id]
	if !exists || len(positions) == 0 {
		return TopicRef{}, false
	}

	return r.topics[positions[0]], true
}

// FindAllTopics returns every occurrence of a topic id, in
// registration order.
func (r *Registry) FindAllTopics(id string) []TopicRef {
	positions := r.topicByID[id]
	refs := make([]TopicRef, len(positions))
	for i, pos := range positions {
		refs[i] = r.topics[pos]
	}

	return refs
}

// Phases returns all phases in exactly the order the input module list
// was supplied. That ordering is the canonical curriculum sequence and
// is never re-sorted: phase numbering is meaningful to learners.
func (r *Registry) Phases() []*types.Phase {
	result := make([]*types.Phase, len(r.phases))
	for i := range r.phases {
		result[i] = &r.phases[i]
	}

	return result
}

// Topics returns every topic in canonical order: phases in input
// order, topics in authored order within each phase.
func (r *Registry) Topics() []TopicRef {
	result := make([]TopicRef, len(r.topics))
	copy(result, r.topics)

	return result
}

// TopicIndex returns the canonical position of a topic reference, used
// for previous/next navigation. The pointer must come from this
// Registry.
func (r *Registry) TopicIndex(topic *types.Topic) (int, bool) {
	pos, exists := r.topicPos[topic]

	return pos, exists
}

// Module returns the source module name for the phase at the given
// canonical position.
func (r *Registry) Module(i int) string {
	if i < 0 || i >= len(r.modules) {
		return ""
	}

	return r.modules[i]
}

// PhaseCount returns the number of registered phases.
func (r *Registry) PhaseCount() int {
	return len(r.phases)
}

// TopicCount returns the number of registered topics across all phases.
func (r *Registry) TopicCount() int {
	return len(r.topics)
}
