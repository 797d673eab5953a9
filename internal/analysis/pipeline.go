// Package analysis runs the post-submission attribution pipeline:
// classify incorrect answers, merge suggestions into the stored records,
// then fetch mentor feedback. Both service calls are best-effort.
package analysis

import (
	"context"
	"fmt"
	"os"

	"github.com/adityakr/prepdrill/internal/classify"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/mentor"
)

// View is everything the analysis screen needs for one paper. Answers carry
// merged categories; Suggestions keeps every suggestion for display, adopted
// or not.
type View struct {
	Paper       exam.Paper
	Questions   []exam.Question
	Answers     []exam.Answer
	Suggestions map[string]classify.Suggestion
	Feedback    *mentor.Feedback
}

// Pipeline orchestrates classification, the merge rule and mentor feedback
// for one submitted paper.
type Pipeline struct {
	records    exam.RecordStore
	classifier *classify.Classifier
	mentor     *mentor.Mentor

	// warnf receives degradation notices. Defaults to stderr.
	warnf func(format string, args ...any)
}

// New creates a pipeline. Classifier and mentor may be nil, in which case the
// corresponding step degrades the same way a service failure would.
func New(records exam.RecordStore, c *classify.Classifier, m *mentor.Mentor) *Pipeline {
	return &Pipeline{
		records:    records,
		classifier: c,
		mentor:     m,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Merge runs steps 1-3 of the pipeline: collect the paper's records, request
// category suggestions for the incorrect answers, and adopt each suggestion
// whose answer still carries the submission-time placeholder. Adopted
// categories are persisted one answer at a time; a persistence fault
// surfaces. A classification failure does not: the merge proceeds with an
// empty suggestion map and the stored categories stand.
func (p *Pipeline) Merge(ctx context.Context, paperID string) (*View, error) {
	paper, err := p.paper(ctx, paperID)
	if err != nil {
		return nil, err
	}
	questions, err := p.records.Questions(ctx, paperID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	answers, err := p.records.Answers(ctx, paperID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	suggestions := map[string]classify.Suggestion{}
	if p.classifier != nil && hasIncorrect(answers) {
		suggestions, err = p.classifier.Suggest(ctx, questions, answers)
		if err != nil {
			p.warnf("mistake classification unavailable: %v", err)
			suggestions = map[string]classify.Suggestion{}
		}
	}

	for i, a := range answers {
		s, ok := suggestions[a.ID]
		if !ok || a.Correct {
			continue
		}
		// A category that moved off the placeholder was chosen by the
		// candidate. Suggestions never revert it.
		if a.MistakeCategory != "" && a.MistakeCategory != exam.DefaultCategory {
			continue
		}
		if a.MistakeCategory == s.Category {
			continue
		}
		a.MistakeCategory = s.Category
		if err := p.records.SaveAnswer(ctx, a); err != nil {
			return nil, fmt.Errorf("persist adopted category for answer %s: %w", a.ID, err)
		}
		answers[i] = a
	}

	return &View{
		Paper:       paper,
		Questions:   questions,
		Answers:     answers,
		Suggestions: suggestions,
	}, nil
}

// Debrief runs steps 4-5: mentor feedback over the merged answer set, then
// the paper's advance to analyzed. A feedback failure yields the placeholder
// and skips the advance, so the next pipeline run retries it. The merged view
// stays valid either way.
func (p *Pipeline) Debrief(ctx context.Context, v *View, profile *exam.Profile) *mentor.Feedback {
	if p.mentor == nil {
		v.Feedback = mentor.Placeholder()
		return v.Feedback
	}

	fb, err := p.mentor.Generate(ctx, mentor.Input{
		Profile:   profile,
		Paper:     v.Paper,
		Questions: v.Questions,
		Answers:   v.Answers,
	})
	if err != nil {
		p.warnf("mentor feedback unavailable: %v", err)
		v.Feedback = mentor.Placeholder()
		return v.Feedback
	}
	v.Feedback = fb

	if v.Paper.Status == exam.StatusSubmitted {
		v.Paper.Status = exam.StatusAnalyzed
		if err := p.records.SavePaper(ctx, v.Paper); err != nil {
			p.warnf("could not mark paper %s analyzed: %v", v.Paper.ID, err)
			v.Paper.Status = exam.StatusSubmitted
		}
	}
	return fb
}

// Run executes the whole pipeline. onMerged, if non-nil, fires with the
// merged view before the feedback request starts, so callers can render
// scores and categories while the slower call is in flight.
func (p *Pipeline) Run(ctx context.Context, paperID string, profile *exam.Profile, onMerged func(*View)) (*View, error) {
	v, err := p.Merge(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if onMerged != nil {
		onMerged(v)
	}
	p.Debrief(ctx, v, profile)
	return v, nil
}

// Override sets an answer's category directly, bypassing the merge rule.
// Future pipeline runs treat the answer as already decided.
func (p *Pipeline) Override(ctx context.Context, paperID, answerID string, category exam.MistakeCategory) error {
	if !exam.ValidCategory(string(category)) {
		return fmt.Errorf("unknown mistake category %q", category)
	}

	answers, err := p.records.Answers(ctx, paperID)
	if err != nil {
		return fmt.Errorf("load answers: %w", err)
	}
	for _, a := range answers {
		if a.ID != answerID {
			continue
		}
		if a.Correct {
			return fmt.Errorf("answer %s is correct and has no mistake category", answerID)
		}
		a.MistakeCategory = category
		if err := p.records.SaveAnswer(ctx, a); err != nil {
			return fmt.Errorf("persist category override: %w", err)
		}
		return nil
	}
	return fmt.Errorf("answer %s not found in paper %s", answerID, paperID)
}

func (p *Pipeline) paper(ctx context.Context, paperID string) (exam.Paper, error) {
	papers, err := p.records.Papers(ctx)
	if err != nil {
		return exam.Paper{}, fmt.Errorf("load papers: %w", err)
	}
	for _, pp := range papers {
		if pp.ID == paperID {
			return pp, nil
		}
	}
	return exam.Paper{}, fmt.Errorf("paper %s not found", paperID)
}

func hasIncorrect(answers []exam.Answer) bool {
	for _, a := range answers {
		if !a.Correct {
			return true
		}
	}
	return false
}
