package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ModuleShape tags the two authored forms a phase module can take.
type ModuleShape int

const (
	// ShapePhase is a full Phase envelope: {id, title, emoji, description, topics}.
	ShapePhase ModuleShape = iota
	// ShapeTopicList is a bare sequence of Topic records with no envelope.
	ShapeTopicList
)

// String returns the string representation of the module shape.
func (s ModuleShape) String() string {
	switch s {
	case ShapePhase:
		return "phase"
	case ShapeTopicList:
		return "topic-list"
	default:
		return "unknown"
	}
}

// Module is one independently authored phase module. Real content uses
// both a Phase envelope and a bare topic list, so the dual shape is a
// first-class contract resolved once at decode time; downstream code
// only ever sees the normalized Phase form.
type Module struct {
	// Name is the module key (typically the source filename stem). It is
	// the fallback id and title when the module has no Phase envelope.
	Name string

	Shape ModuleShape

	// Phase is set when Shape == ShapePhase.
	Phase Phase
	// Topics is set when Shape == ShapeTopicList.
	Topics []Topic
}

// UnmarshalYAML resolves the dual shape by inspecting the document node
// kind: a mapping decodes as a Phase envelope, a sequence as a bare
// topic list. Anything else is a malformed module.
func (m *Module) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		m.Shape = ShapePhase
		return node.Decode(&m.Phase)
	case yaml.SequenceNode:
		m.Shape = ShapeTopicList
		return node.Decode(&m.Topics)
	default:
		return fmt.Errorf("module must be a phase mapping or a topic sequence, got yaml node kind %d", node.Kind)
	}
}

// Normalize returns the Phase form of the module. Bare topic lists are
// wrapped in a synthesized Phase keyed by the module name. All topics
// are guaranteed non-nil CommonMistakes and InterviewQuestions slices.
func (m Module) Normalize() Phase {
	var phase Phase
	switch m.Shape {
	case ShapeTopicList:
		phase = Phase{
			ID:     m.Name,
			Title:  m.Name,
			Topics: m.Topics,
		}
	default:
		phase = m.Phase
		if phase.ID == "" {
			phase.ID = m.Name
		}
		if phase.Title == "" {
			phase.Title = m.Name
		}
	}

	topics := make([]Topic, len(phase.Topics))
	for i, topic := range phase.Topics {
		if topic.CommonMistakes == nil {
			topic.CommonMistakes = []string{}
		}
		if topic.InterviewQuestions == nil {
			topic.InterviewQuestions = []InterviewQuestion{}
		}
		topics[i] = topic
	}
	phase.Topics = topics

	return phase
}
