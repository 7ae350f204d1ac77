package diagnostics

import (
	"github.com/spigell/hh-assessor/internal/scoring"
)

// Domain ids referenced by the rule tables.
const (
	Mission    = "mission"
	People     = "people"
	Execution  = "execution"
	Growth     = "growth"
	Transition = "transition"
)

// Cut points used by the rule tables, as fractions of the domain maximum.
const (
	High = 0.75
	Low  = 0.50
	// Soft is the looser bound for the second half of a failure factor.
	Soft = 0.60
)

// Situational archetypes.
const (
	Startup           = "startup"
	Turnaround        = "turnaround"
	AcceleratedGrowth = "accelerated-growth"
	Realignment       = "realignment"
	SustainingSuccess = "sustaining-success"

	// FallbackSituation is reported when no situation rule matches.
	FallbackSituation = SustainingSuccess
)

// Failure factors.
const (
	NeglectingRelationships = "neglecting-relationships"
	ComingWithTheAnswer     = "coming-with-the-answer"
	AttemptingTooMuch       = "attempting-too-much"
	MisalignedPriorities    = "misaligned-priorities"
	StalledDevelopment      = "stalled-development"
)

// Vector is the unrounded percentage of every scored domain.
type Vector struct {
	pct map[string]float64
}

func NewVector(scores []scoring.DomainScore) Vector {
	v := Vector{pct: make(map[string]float64, len(scores))}
	for _, s := range scores {
		v.pct[s.Domain] = s.Percentage
	}
	return v
}

// Get returns the percentage of a domain and whether it was scored.
func (v Vector) Get(domain string) (float64, bool) {
	p, ok := v.pct[domain]
	return p, ok
}

// Predicate tests a score vector. A predicate over a domain that was not
// scored is false.
type Predicate func(v Vector) bool

func atLeast(domain string, threshold float64) Predicate {
	return func(v Vector) bool {
		p, ok := v.Get(domain)
		return ok && p >= threshold
	}
}

func below(domain string, threshold float64) Predicate {
	return func(v Vector) bool {
		p, ok := v.Get(domain)
		return ok && p < threshold
	}
}

func every(threshold float64) Predicate {
	return func(v Vector) bool {
		if len(v.pct) == 0 {
			return false
		}
		for _, p := range v.pct {
			if p < threshold {
				return false
			}
		}
		return true
	}
}

func meanBelow(threshold float64) Predicate {
	return func(v Vector) bool {
		if len(v.pct) == 0 {
			return false
		}
		var sum float64
		for _, p := range v.pct {
			sum += p
		}
		return sum/float64(len(v.pct)) < threshold
	}
}

func all(preds ...Predicate) Predicate {
	return func(v Vector) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

type SituationRule struct {
	Name      string
	Situation string
	When      Predicate
}

// SituationRules are evaluated in order; the first match wins.
var SituationRules = []SituationRule{
	{Name: "all domains high", Situation: SustainingSuccess, When: every(High)},
	{Name: "overall low", Situation: Turnaround, When: meanBelow(Low)},
	{Name: "execution high, people low", Situation: Turnaround, When: all(atLeast(Execution, High), below(People, Low))},
	{Name: "growth high, mission low", Situation: Realignment, When: all(atLeast(Growth, High), below(Mission, Low))},
	{Name: "mission high, execution low", Situation: Startup, When: all(atLeast(Mission, High), below(Execution, Low))},
	{Name: "growth and execution high", Situation: AcceleratedGrowth, When: all(atLeast(Growth, High), atLeast(Execution, High))},
}

// Situation maps a vector to exactly one archetype.
func Situation(v Vector) string {
	for _, r := range SituationRules {
		if r.When(v) {
			return r.Situation
		}
	}
	return FallbackSituation
}

type FactorRule struct {
	Factor string
	When   Predicate
}

// FactorRules are all evaluated; every match is reported in table order.
var FactorRules = []FactorRule{
	{Factor: NeglectingRelationships, When: all(below(People, Low), below(Transition, Soft))},
	{Factor: ComingWithTheAnswer, When: all(below(Transition, Low), atLeast(Execution, High))},
	{Factor: AttemptingTooMuch, When: all(below(Execution, Low), below(Growth, Soft))},
	{Factor: MisalignedPriorities, When: all(below(Mission, Low), below(People, Soft))},
	{Factor: StalledDevelopment, When: all(below(Growth, Low), below(Transition, Low))},
}

// Factors returns the ids of every failure factor that applies.
func Factors(v Vector) []string {
	var out []string
	for _, r := range FactorRules {
		if r.When(v) {
			out = append(out, r.Factor)
		}
	}
	return out
}
