// Package validate runs the corpus-wide check battery over normalized
// phase modules and aggregates every finding into a single report. It
// never fails fast: one pass surfaces every problem in the corpus at
// once so authors are not stuck in fix-rerun-fix cycles.
package validate

import (
	"fmt"
	"strings"

	"github.com/conneroisu/curricula/internal/types"
)

// Severity tags a finding as blocking or advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Check names identify which rule produced a finding.
const (
	CheckDuplicatePhaseID = "duplicate-phase-id"
	CheckDuplicateTopicID = "duplicate-topic-id"
	CheckRequiredField    = "required-field"
	CheckQuestionType     = "question-type"
	CheckCodeFence        = "code-fence"
)

// Finding is one detected structural issue in the corpus.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Module   string   `json:"module,omitempty"`
	PhaseID  string   `json:"phase_id,omitempty"`
	TopicID  string   `json:"topic_id,omitempty"`
	Message  string   `json:"message"`
}

// Report is the aggregated result of one validation pass.
type Report struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Entry pairs a normalized phase with the module it came from, so
// findings can name the offending source module.
type Entry struct {
	Module string
	Phase  types.Phase
}

// HasErrors reports whether any blocking finding exists.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Add routes a finding to the right severity bucket.
func (r *Report) Add(f Finding) {
	if f.Severity == SeverityError {
		r.Errors = append(r.Errors, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}

// Summary returns a one-line human summary of the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d errors, %d warnings", len(r.Errors), len(r.Warnings))
}

// Corpus runs every check over the full set of normalized modules.
func Corpus(entries []Entry) *Report {
	report := &Report{
		Errors:   make([]Finding, 0),
		Warnings: make([]Finding, 0),
	}

	checkDuplicatePhaseIDs(entries, report)
	checkDuplicateTopicIDs(entries, report)
	checkRequiredFields(entries, report)
	checkQuestionTypes(entries, report)
	checkCodeFences(entries, report)

	return report
}

// checkDuplicatePhaseIDs flags phase ids shared by two or more modules.
// The finding names every offending module, not just the second one.
func checkDuplicatePhaseIDs(entries []Entry, report *Report) {
	modulesByID := make(map[string][]string)
	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, seen := modulesByID[entry.Phase.ID]; !seen {
			order = append(order, entry.Phase.ID)
		}
		modulesByID[entry.Phase.ID] = append(modulesByID[entry.Phase.ID], entry.Module)
	}

	for _, id := range order {
		modules := modulesByID[id]
		if len(modules) < 2 {
			continue
		}
		report.Add(Finding{
			Check:    CheckDuplicatePhaseID,
			Severity: SeverityError,
			PhaseID:  id,
			Message: fmt.Sprintf("phase id %q is declared by multiple modules: %s",
				id, strings.Join(modules, ", ")),
		})
	}
}

// checkDuplicateTopicIDs flags topic ids reused across different
// phases. This is a warning, not an error: presentation layers key by
// (phase id, topic id) pairs, so the collision is a data-quality signal
// rather than a correctness failure.
func checkDuplicateTopicIDs(entries []Entry, report *Report) {
	phasesByTopic := make(map[string][]string)
	order := make([]string, 0)
	for _, entry := range entries {
		for _, topic := range entry.Phase.Topics {
			if _, seen := phasesByTopic[topic.ID]; !seen {
				order = append(order, topic.ID)
			}
			phasesByTopic[topic.ID] = append(phasesByTopic[topic.ID], entry.Phase.ID)
		}
	}

	for _, id := range order {
		phases := phasesByTopic[id]
		if len(phases) < 2 {
			continue
		}
		report.Add(Finding{
			Check:    CheckDuplicateTopicID,
			Severity: SeverityWarning,
			TopicID:  id,
			Message: fmt.Sprintf("topic id %q appears in multiple phases: %s",
				id, strings.Join(phases, ", ")),
		})
	}
}

// checkRequiredFields flags topics missing a title or explanation and
// phases with no topics at all.
func checkRequiredFields(entries []Entry, report *Report) {
	for _, entry := range entries {
		if len(entry.Phase.Topics) == 0 {
			report.Add(Finding{
				Check:    CheckRequiredField,
				Severity: SeverityError,
				Module:   entry.Module,
				PhaseID:  entry.Phase.ID,
				Message:  fmt.Sprintf("phase %q has no topics", entry.Phase.ID),
			})
		}

		for _, topic := range entry.Phase.Topics {
			if strings.TrimSpace(topic.Title) == "" {
				report.Add(Finding{
					Check:    CheckRequiredField,
					Severity: SeverityError,
					Module:   entry.Module,
					PhaseID:  entry.Phase.ID,
					TopicID:  topic.ID,
					Message:  fmt.Sprintf("topic %q is missing a title", topic.ID),
				})
			}
			if strings.TrimSpace(topic.Explanation) == "" {
				report.Add(Finding{
					Check:    CheckRequiredField,
					Severity: SeverityError,
					Module:   entry.Module,
					PhaseID:  entry.Phase.ID,
					TopicID:  topic.ID,
					Message:  fmt.Sprintf("topic %q is missing an explanation", topic.ID),
				})
			}
		}
	}
}

// checkQuestionTypes flags interview questions whose type is outside
// the controlled vocabulary.
func checkQuestionTypes(entries []Entry, report *Report) {
	for _, entry := range entries {
		for _, topic := range entry.Phase.Topics {
			for _, question := range topic.InterviewQuestions {
				if question.Type.Valid() {
					continue
				}
				report.Add(Finding{
					Check:    CheckQuestionType,
					Severity: SeverityError,
					Module:   entry.Module,
					PhaseID:  entry.Phase.ID,
					TopicID:  topic.ID,
					Message: fmt.Sprintf("unknown interview question type %q (known types: %s)",
						question.Type, knownQuestionTypes()),
				})
			}
		}
	}
}

// checkCodeFences flags code examples with an unbalanced number of
// triple-backtick fence markers. This is a structural heuristic for
// broken embedded snippets, not a markdown parser.
func checkCodeFences(entries []Entry, report *Report) {
	for _, entry := range entries {
		for _, topic := range entry.Phase.Topics {
			if topic.CodeExample == "" {
				continue
			}
			if strings.Count(topic.CodeExample, "```")%2 == 0 {
				continue
			}
			report.Add(Finding{
				Check:    CheckCodeFence,
				Severity: SeverityWarning,
				Module:   entry.Module,
				PhaseID:  entry.Phase.ID,
				TopicID:  topic.ID,
				Message:  fmt.Sprintf("topic %q has an odd number of code fence markers", topic.ID),
			})
		}
	}
}

func knownQuestionTypes() string {
	known := types.QuestionTypes()
	names := make([]string, len(known))
	for i, t := range known {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
