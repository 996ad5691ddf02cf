package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by Get for an unknown assessment id.
var ErrNotFound = errors.New("assessment not found")

// Assessment is an ordered sequence of questions with a time budget.
// Question order is significant: it defines presentation and navigation
// order. Assessments are immutable once loaded.
type Assessment struct {
	ID          string
	Title       string
	Subject     Subject
	AgeGroup    string
	Duration    time.Duration // total time budget for a session
	Questions   []Question
	Description string
	Difficulty  Difficulty
}

// index holds the catalog with a precomputed ID lookup.
type index struct {
	assessments []Assessment
	byID        map[string]*Assessment
}

// idx is the package-level catalog singleton, set by init() in seed.go.
var idx *index

func buildIndex(assessments []Assessment) *index {
	ix := &index{
		assessments: assessments,
		byID:        make(map[string]*Assessment, len(assessments)),
	}
	for i := range ix.assessments {
		ix.byID[ix.assessments[i].ID] = &ix.assessments[i]
	}
	return ix
}

// Get returns the assessment with the given id.
func Get(id string) (Assessment, error) {
	a, ok := idx.byID[id]
	if !ok {
		return Assessment{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return *a, nil
}

// All returns every assessment in catalog order.
func All() []Assessment {
	out := make([]Assessment, len(idx.assessments))
	copy(out, idx.assessments)
	return out
}

// validate performs structural checks on the seeded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validate(assessments []Assessment) error {
	var errs []string

	assessmentIDs := make(map[string]bool, len(assessments))
	for _, a := range assessments {
		if assessmentIDs[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate assessment ID: %q", a.ID))
		}
		assessmentIDs[a.ID] = true

		if a.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("assessment %q has non-positive duration", a.ID))
		}
		if len(a.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("assessment %q has no questions", a.ID))
		}

		questionIDs := make(map[string]bool, len(a.Questions))
		for _, q := range a.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("assessment %q repeats question %q", a.ID, q.ID))
			}
			questionIDs[q.ID] = true

			if q.SkillArea == "" {
				errs = append(errs, fmt.Sprintf("question %q has no skill area", q.ID))
			}
			if q.IsMatching() {
				if len(q.CorrectAnswers) == 0 {
					errs = append(errs, fmt.Sprintf("matching question %q has no answer set", q.ID))
				}
			} else if q.CorrectAnswer == "" {
				errs = append(errs, fmt.Sprintf("question %q has no correct answer", q.ID))
			}
			if q.Type == TypeMultipleChoice && len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("multiple-choice question %q needs at least 2 options", q.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
