package recommend

import (
	"math"
	"strings"

	"github.com/spigell/hh-assessor/internal/catalog"
)

// Contribution ceilings of the candidate match score. They add up to 100.
const (
	EHRWeight        = 30
	EHRPartialWeight = 15
	ProgramsWeight   = 40
	BilingualWeight  = 20
	ExperienceWeight = 10
)

const (
	// EnglishOnly is the language answer that earns no bilingual credit.
	EnglishOnly = "english-only"
	// EntryLevel is the experience answer that earns no experience credit.
	EntryLevel = "entry-level"
)

// CandidateProfile holds the optional self-reported answers of a candidate.
// A nil slice or an empty string means the question was skipped; an empty,
// non-nil slice or a list holding only None means the candidate has none.
type CandidateProfile struct {
	EHRSystems []string `yaml:"ehr_systems" json:"ehr_systems" mapstructure:"ehr_systems"`
	Programs   []string `yaml:"programs" json:"programs" mapstructure:"programs"`
	Language   string   `yaml:"language" json:"language" mapstructure:"language"`
	Experience string   `yaml:"experience" json:"experience" mapstructure:"experience"`
}

// MatchScore computes the role-fit percentage of a candidate against an
// organization. Skipped categories are left out of both the earned and the
// available points. ok is false when every category was skipped.
func MatchScore(p CandidateProfile, org catalog.Organization) (score int, ok bool) {
	var earned float64
	var available int

	if p.EHRSystems != nil {
		available += EHRWeight
		switch {
		case containsFold(p.EHRSystems, org.EHRSystem):
			earned += EHRWeight
		case len(nonEmpty(p.EHRSystems)) > 0:
			earned += EHRPartialWeight
		}
	}

	if p.Programs != nil {
		available += ProgramsWeight
		selected := nonEmpty(p.Programs)
		if len(selected) > 0 {
			var overlap int
			for _, program := range selected {
				if containsFold(org.Programs, program) {
					overlap++
				}
			}
			earned += float64(ProgramsWeight) * float64(overlap) / float64(len(selected))
		}
	}

	// Answers outside the accepted lists count as answered without credit.
	if normalize(p.Language) != "" {
		available += BilingualWeight
		if lang, ok := CanonicalLanguage(p.Language); ok && lang != EnglishOnly {
			earned += BilingualWeight
		}
	}

	if normalize(p.Experience) != "" {
		available += ExperienceWeight
		if exp, ok := CanonicalExperience(p.Experience); ok && exp != EntryLevel {
			earned += ExperienceWeight
		}
	}

	if available == 0 {
		return 0, false
	}
	return int(math.Round(earned * 100 / float64(available))), true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" && n != None {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(values []string, want string) bool {
	want = normalize(want)
	if want == "" {
		return false
	}
	for _, v := range values {
		if normalize(v) == want {
			return true
		}
	}
	return false
}
