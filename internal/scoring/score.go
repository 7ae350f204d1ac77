package scoring

import (
	"math"

	"github.com/spigell/hh-assessor/internal/catalog"
)

// AnswerSet maps a question id to the chosen option id.
type AnswerSet map[string]string

// DomainScore is the outcome of one domain. Percentage is unrounded and is
// the value every comparison uses; Percent is for display only.
type DomainScore struct {
	Domain      string        `json:"domain"`
	Raw         int           `json:"raw"`
	MaxPossible int           `json:"max_possible"`
	Questions   int           `json:"questions"`
	Percentage  float64       `json:"percentage"`
	Level       catalog.Level `json:"level"`
}

// Percent returns the percentage rounded to the nearest integer in 0..100.
func (d DomainScore) Percent() int {
	return RoundPercent(d.Percentage)
}

// RoundPercent converts a fraction to a display percentage.
func RoundPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// Scorer turns answer sets into domain scores. It holds no per-session state
// and is safe for concurrent use.
type Scorer struct {
	thresholds Thresholds
	order      []string
}

// NewScorer returns a scorer reporting domains in the catalog's canonical order.
func NewScorer(c *catalog.Catalog, t Thresholds) *Scorer {
	return &Scorer{thresholds: t, order: c.DomainIDs()}
}

func (s *Scorer) Thresholds() Thresholds {
	return s.thresholds
}

// Score computes per-domain scores for the administered questions. It fails
// with IncompleteAssessmentError unless every question is answered and never
// returns partial results. Answers to questions that were not administered
// are ignored.
func (s *Scorer) Score(answers AnswerSet, questions []catalog.Question) ([]DomainScore, error) {
	var missing []string
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteAssessmentError{Missing: missing}
	}

	totals := make(map[string]*DomainScore)
	var seen []string
	for _, q := range questions {
		chosen, ok := q.Option(answers[q.ID])
		if !ok {
			return nil, &InvalidAnswerError{QuestionID: q.ID, OptionID: answers[q.ID]}
		}

		ds, ok := totals[q.Domain]
		if !ok {
			ds = &DomainScore{Domain: q.Domain}
			totals[q.Domain] = ds
			seen = append(seen, q.Domain)
		}
		ds.Raw += chosen.Points
		ds.MaxPossible += catalog.MaxPoints
		ds.Questions++
	}

	scores := make([]DomainScore, 0, len(totals))
	emit := func(id string) {
		ds, ok := totals[id]
		if !ok {
			return
		}
		ds.Percentage = float64(ds.Raw) / float64(ds.MaxPossible)
		ds.Level = s.thresholds.Classify(ds.Percentage)
		scores = append(scores, *ds)
		delete(totals, id)
	}
	for _, id := range s.order {
		emit(id)
	}
	for _, id := range seen {
		emit(id)
	}

	return scores, nil
}

// Overall is the arithmetic mean of the unrounded domain percentages, so every
// domain weighs the same regardless of how many questions it had.
func Overall(scores []DomainScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Percentage
	}
	return sum / float64(len(scores))
}
