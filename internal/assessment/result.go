package assessment

import (
	"time"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/diagnostics"
	"github.com/spigell/hh-assessor/internal/scoring"
)

// Result is the immutable outcome of one assessment session, ready to render.
type Result struct {
	ID             string               `json:"id"`
	RoleID         string               `json:"role_id"`
	RoleLabel      string               `json:"role_label"`
	Variant        catalog.Variant      `json:"variant"`
	Language       catalog.Language     `json:"language"`
	CreatedAt      time.Time            `json:"created_at"`
	Domains        []DomainResult       `json:"domains"`
	Overall        float64              `json:"overall"`
	OverallPercent int                  `json:"overall_percent"`
	TopStrength    string               `json:"top_strength"`
	TopGrowthArea  string               `json:"top_growth_area"`
	Situation      string               `json:"situation,omitempty"`
	SituationText  string               `json:"situation_text,omitempty"`
	FailureFactors []FailureFactor      `json:"failure_factors,omitempty"`
	Insights       diagnostics.Insights `json:"insights"`
	RoleInsight    string               `json:"role_insight,omitempty"`
	Actions        []Recommendation     `json:"actions"`
	Structures     []Recommendation     `json:"structures"`
	MatchScore     *int                 `json:"match_score,omitempty"`
	Organization   string               `json:"organization,omitempty"`
	Answers        scoring.AnswerSet    `json:"answers"`

	// Scores keeps the unrounded vector the labels were derived from.
	Scores []scoring.DomainScore `json:"-"`
}

type DomainResult struct {
	Domain     string        `json:"domain"`
	Name       string        `json:"name"`
	Raw        int           `json:"raw"`
	Max        int           `json:"max"`
	Percentage float64       `json:"percentage"`
	Percent    int           `json:"percent"`
	Level      catalog.Level `json:"level"`
}

type FailureFactor struct {
	Factor   string `json:"factor"`
	Coaching string `json:"coaching"`
}

// Recommendation is a localized action or structure. Tier fields that do not
// apply to the entry kind are zero.
type Recommendation struct {
	ID          string `json:"id"`
	Domain      string `json:"domain"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty,omitempty"`
	Timeframe   int    `json:"timeframe,omitempty"`
	Minutes     int    `json:"minutes,omitempty"`
	GroupSize   int    `json:"group_size,omitempty"`
}

// Domain returns the result for one domain.
func (r *Result) Domain(id string) (DomainResult, bool) {
	for _, d := range r.Domains {
		if d.Domain == id {
			return d, true
		}
	}
	return DomainResult{}, false
}

func actionRecommendation(a catalog.Action, lang catalog.Language) Recommendation {
	return Recommendation{
		ID:          a.ID,
		Domain:      a.Domain,
		Title:       a.Title.Pick(lang),
		Description: a.Description.Pick(lang),
		Difficulty:  a.Difficulty,
		Timeframe:   a.Timeframe,
	}
}

func structureRecommendation(s catalog.Structure, lang catalog.Language) Recommendation {
	return Recommendation{
		ID:          s.ID,
		Domain:      s.Domain,
		Title:       s.Title.Pick(lang),
		Description: s.Description.Pick(lang),
		Minutes:     s.Minutes,
		GroupSize:   s.GroupSize,
	}
}
