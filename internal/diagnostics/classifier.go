// Package diagnostics derives labels and coaching from a domain score vector.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/scoring"
)

// Factor is a failure factor that fired, with its coaching text.
type Factor struct {
	ID       string
	Coaching catalog.Text
}

type Diagnostics struct {
	TopStrength   string
	TopGrowthArea string
	// Situation is empty for variants that do not report one.
	Situation     string
	SituationText catalog.Text
	Factors       []Factor
}

type Insights struct {
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growth_areas"`
	NextSteps   []string `json:"next_steps"`
}

// Classifier attaches catalog content to the rule tables.
type Classifier struct {
	catalog *catalog.Catalog
}

// NewClassifier fails when the catalog lacks text for any situation or factor
// the rule tables can produce.
func NewClassifier(c *catalog.Catalog) (*Classifier, error) {
	for _, r := range FactorRules {
		if c.Factors[r.Factor].IsZero() {
			return nil, fmt.Errorf("catalog has no coaching text for failure factor %s", r.Factor)
		}
	}
	situations := []string{FallbackSituation}
	for _, r := range SituationRules {
		situations = append(situations, r.Situation)
	}
	for _, s := range situations {
		if c.Situations[s].IsZero() {
			return nil, fmt.Errorf("catalog has no text for situation %s", s)
		}
	}
	return &Classifier{catalog: c}, nil
}

// Classify derives the diagnostics of a score vector. Scores must be in
// canonical domain order; ties at the extremes go to the earlier domain.
func (c *Classifier) Classify(scores []scoring.DomainScore, variant catalog.Variant) Diagnostics {
	var d Diagnostics
	d.TopStrength, d.TopGrowthArea = Extremes(scores)

	v := NewVector(scores)
	if variant == catalog.VariantManager {
		d.Situation = Situation(v)
		d.SituationText = c.catalog.Situations[d.Situation]
	}
	for _, id := range Factors(v) {
		d.Factors = append(d.Factors, Factor{ID: id, Coaching: c.catalog.Factors[id]})
	}
	return d
}

// Extremes returns the domains with the highest and lowest unrounded
// percentage, preferring the earliest domain on ties.
func Extremes(scores []scoring.DomainScore) (top, bottom string) {
	if len(scores) == 0 {
		return "", ""
	}
	hi, lo := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s.Percentage > hi.Percentage {
			hi = s
		}
		if s.Percentage < lo.Percentage {
			lo = s
		}
	}
	return hi.Domain, lo.Domain
}

// Insights looks up the per-domain, per-level text: strengths strongest first,
// growth areas and next steps weakest first.
func (c *Classifier) Insights(scores []scoring.DomainScore, lang catalog.Language) Insights {
	var strong, weak []scoring.DomainScore
	for _, s := range scores {
		if s.Level == catalog.LevelStrength {
			strong = append(strong, s)
		} else {
			weak = append(weak, s)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool { return strong[i].Percentage > strong[j].Percentage })
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Percentage < weak[j].Percentage })

	var out Insights
	for _, s := range strong {
		if t, ok := c.catalog.Insight(s.Domain, s.Level); ok {
			out.Strengths = append(out.Strengths, t.Summary.Pick(lang))
		}
	}
	for _, s := range weak {
		if t, ok := c.catalog.Insight(s.Domain, s.Level); ok {
			out.GrowthAreas = append(out.GrowthAreas, t.Summary.Pick(lang))
			out.NextSteps = append(out.NextSteps, t.NextStep.Pick(lang))
		}
	}
	if len(weak) == 0 && len(strong) > 0 {
		if t, ok := c.catalog.Insight(strong[0].Domain, strong[0].Level); ok {
			out.NextSteps = append(out.NextSteps, t.NextStep.Pick(lang))
		}
	}
	return out
}
