// Package types defines the shape contracts for curriculum content:
// phases, topics, and interview questions. It holds no behavior beyond
// decoding and normalization of authored phase modules.
package types

// Phase is a top-level curriculum unit grouping related topics.
// Phase ids are unique across the whole registry; the ordering of
// phases is the canonical curriculum sequence.
type Phase struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Emoji       string  `yaml:"emoji" json:"emoji,omitempty"`
	Description string  `yaml:"description" json:"description,omitempty"`
	Topics      []Topic `yaml:"topics" json:"topics"`
}

// Topic is a single lesson within a phase. Title and Explanation are
// required; CommonMistakes and InterviewQuestions may be empty but are
// always non-nil after normalization so consumers can range over them
// without nil checks.
type Topic struct {
	ID                 string              `yaml:"id" json:"id"`
	Title              string              `yaml:"title" json:"title"`
	Explanation        string              `yaml:"explanation" json:"explanation"`
	CodeExample        string              `yaml:"codeExample" json:"codeExample,omitempty"`
	Exercise           string              `yaml:"exercise" json:"exercise,omitempty"`
	CommonMistakes     []string            `yaml:"commonMistakes" json:"commonMistakes"`
	InterviewQuestions []InterviewQuestion `yaml:"interviewQuestions" json:"interviewQuestions"`
}

// InterviewQuestion is one Q&A pair attached to a topic.
type InterviewQuestion struct {
	Type QuestionType `yaml:"type" json:"type"`
	Q    string       `yaml:"q" json:"q"`
	A    string       `yaml:"a" json:"a"`
}

// QuestionType is the controlled vocabulary for interview questions.
// Unknown values are a validation error, never a silent pass-through:
// consumers key UI badges off the type, so new types must be registered
// here explicitly.
type QuestionType string

const (
	QuestionConceptual QuestionType = "conceptual"
	QuestionCoding     QuestionType = "coding"
	QuestionTricky     QuestionType = "tricky"
	QuestionScenario   QuestionType = "scenario"
	QuestionMeta       QuestionType = "meta"
	QuestionBehavioral QuestionType = "behavioral"
)

// QuestionTypes returns the controlled vocabulary in declaration order.
func QuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionConceptual,
		QuestionCoding,
		QuestionTricky,
		QuestionScenario,
		QuestionMeta,
		QuestionBehavioral,
	}
}

// Valid reports whether t belongs to the controlled vocabulary.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionConceptual, QuestionCoding, QuestionTricky,
		QuestionScenario, QuestionMeta, QuestionBehavioral:
		return true
	default:
		return false
	}
}

// String returns the wire form of the question type.
func (t QuestionType) String() string {
	return string(t)
}
