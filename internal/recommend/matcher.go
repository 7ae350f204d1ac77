// Package recommend selects and prioritizes catalog actions and structures
// for the domains a respondent should work on.
package recommend

import (
	"sort"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/scoring"
)

// Stage names, reported in Step.
const (
	StageGrowth   = "growth"
	StageStrength = "strength"
	StageBackfill = "backfill"
)

// Step describes what a selection stage contributed.
type Step struct {
	Stage      string
	Candidates int
	Picked     int
}

// MatchActions returns at most limit actions, fastest and easiest first.
func MatchActions(scores []scoring.DomainScore, actions []catalog.Action, limit int) []catalog.Action {
	picked, _ := MatchActionsWithSteps(scores, actions, limit)
	return picked
}

// MatchActionsWithSteps is MatchActions that also reports how each stage
// contributed to the result.
func MatchActionsWithSteps(scores []scoring.DomainScore, actions []catalog.Action, limit int) ([]catalog.Action, []Step) {
	return match(scores, actions, limit, func(a catalog.Action) string { return a.Domain }, lessAction)
}

// MatchStructures returns at most limit structures, shortest and smallest first.
func MatchStructures(scores []scoring.DomainScore, structures []catalog.Structure, limit int) []catalog.Structure {
	picked, _ := MatchStructuresWithSteps(scores, structures, limit)
	return picked
}

func MatchStructuresWithSteps(scores []scoring.DomainScore, structures []catalog.Structure, limit int) ([]catalog.Structure, []Step) {
	return match(scores, structures, limit, func(s catalog.Structure) string { return s.Domain }, lessStructure)
}

func lessAction(a, b catalog.Action) bool {
	if a.Difficulty != b.Difficulty {
		return a.Difficulty < b.Difficulty
	}
	return a.Timeframe < b.Timeframe
}

func lessStructure(a, b catalog.Structure) bool {
	if a.Minutes != b.Minutes {
		return a.Minutes < b.Minutes
	}
	return a.GroupSize < b.GroupSize
}

// candidate keeps the stage and catalog position of an entry so ties resolve
// the same way every time.
type candidate[T any] struct {
	entry    T
	stage    int
	position int
}

func match[T any](scores []scoring.DomainScore, entries []T, limit int, domainOf func(T) string, less func(a, b T) bool) ([]T, []Step) {
	if limit <= 0 || len(entries) == 0 {
		return nil, nil
	}

	// Stage 0 covers developing and growth-area domains. Stage 1 covers
	// strength domains, weakest first. Anything else lands in stage 2.
	stageOf := make(map[string]int, len(scores))
	strengthRank := make(map[string]int, len(scores))
	strengths := make([]scoring.DomainScore, 0, len(scores))
	for _, s := range scores {
		if s.Level == catalog.LevelStrength {
			stageOf[s.Domain] = 1
			strengths = append(strengths, s)
		} else {
			stageOf[s.Domain] = 0
		}
	}
	sort.SliceStable(strengths, func(i, j int) bool { return strengths[i].Percentage < strengths[j].Percentage })
	for i, s := range strengths {
		strengthRank[s.Domain] = i
	}

	buckets := make([][]candidate[T], 3)
	for i, e := range entries {
		stage, ok := stageOf[domainOf(e)]
		if !ok {
			stage = 2
		}
		buckets[stage] = append(buckets[stage], candidate[T]{entry: e, stage: stage, position: i})
	}

	sort.SliceStable(buckets[0], func(i, j int) bool {
		return less(buckets[0][i].entry, buckets[0][j].entry)
	})
	sort.SliceStable(buckets[1], func(i, j int) bool {
		a, b := buckets[1][i], buckets[1][j]
		ra, rb := strengthRank[domainOf(a.entry)], strengthRank[domainOf(b.entry)]
		if ra != rb {
			return ra < rb
		}
		return less(a.entry, b.entry)
	})
	sort.SliceStable(buckets[2], func(i, j int) bool {
		return less(buckets[2][i].entry, buckets[2][j].entry)
	})

	stageNames := []string{StageGrowth, StageStrength, StageBackfill}
	picked := make([]candidate[T], 0, limit)
	steps := make([]Step, 0, len(buckets))
	for stage, bucket := range buckets {
		room := limit - len(picked)
		take := min(room, len(bucket))
		picked = append(picked, bucket[:take]...)
		steps = append(steps, Step{Stage: stageNames[stage], Candidates: len(bucket), Picked: take})
	}

	sort.SliceStable(picked, func(i, j int) bool {
		a, b := picked[i], picked[j]
		if less(a.entry, b.entry) {
			return true
		}
		if less(b.entry, a.entry) {
			return false
		}
		if a.stage != b.stage {
			return a.stage < b.stage
		}
		return a.position < b.position
	})

	out := make([]T, 0, len(picked))
	for _, c := range picked {
		out = append(out, c.entry)
	}
	return out, steps
}
