package shuffle

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/spigell/hh-assessor/internal/catalog"
)

func TestShuffleIsDeterministic(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d"}
	for i := 0; i < 50; i++ {
		seed := fmt.Sprintf("question-%d", i)
		first := Shuffle(items, seed)
		for j := 0; j < 5; j++ {
			if again := Shuffle(items, seed); !slices.Equal(first, again) {
				t.Fatalf("seed %s: %v != %v", seed, first, again)
			}
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e", "f"}
	for i := 0; i < 200; i++ {
		got := Shuffle(items, fmt.Sprintf("seed-%d", i))
		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, items) {
			t.Fatalf("not a permutation: %v", got)
		}
	}

	if items[0] != "a" || items[5] != "f" {
		t.Fatalf("input slice was modified: %v", items)
	}
}

func TestShuffleSmallInputs(t *testing.T) {
	t.Parallel()

	if got := Shuffle([]int{}, "x"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := Shuffle([]int{7}, "x"); len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected single item unchanged, got %v", got)
	}
	if got := Shuffle[int](nil, "x"); len(got) != 0 {
		t.Fatalf("expected nil input to stay empty, got %v", got)
	}
}

func TestShuffleSpreadsOrderings(t *testing.T) {
	t.Parallel()

	const samples = 24000
	items := []string{"a", "b", "c", "d"}
	counts := make(map[string]int)
	positions := make([]int, 4)

	for i := 0; i < samples; i++ {
		got := Shuffle(items, fmt.Sprintf("q-%05d", i))
		counts[strings.Join(got, "")]++
		positions[slices.Index(got, "d")]++
	}

	if len(counts) != 24 {
		t.Fatalf("expected all 24 orderings, got %d", len(counts))
	}

	expected := samples / 24
	for order, n := range counts {
		if n < expected*8/10 || n > expected*12/10 {
			t.Fatalf("ordering %s appeared %d times, expected about %d", order, n, expected)
		}
	}

	for pos, n := range positions {
		if n < samples/4*9/10 || n > samples/4*11/10 {
			t.Fatalf("best option landed at position %d %d times out of %d", pos, n, samples)
		}
	}
}

func TestOptionsUsesQuestionID(t *testing.T) {
	t.Parallel()

	q := catalog.Question{
		ID: "mission-01",
		Options: []catalog.Option{
			{ID: "a", Points: 1}, {ID: "b", Points: 2}, {ID: "c", Points: 3}, {ID: "d", Points: 4},
		},
	}

	got := Options(q)
	want := Shuffle(q.Options, "mission-01")
	if !slices.Equal(got, want) {
		t.Fatalf("expected options keyed by question id, got %v want %v", got, want)
	}
}
