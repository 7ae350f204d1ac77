package ai

import "context"

// DomainBrief is one scored domain as the narrator sees it.
type DomainBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Level   string `json:"level"`
}

// Brief is the text-only view of a result handed to a narrative provider.
// It never carries contact details or raw answers.
type Brief struct {
	Role          string        `json:"role"`
	Language      string        `json:"language"`
	Overall       int           `json:"overall"`
	Domains       []DomainBrief `json:"domains"`
	TopStrength   string        `json:"top_strength"`
	TopGrowthArea string        `json:"top_growth_area"`
	Situation     string        `json:"situation,omitempty"`
	Factors       []string      `json:"factors,omitempty"`
}

type Narrative struct {
	Summary string   `json:"summary"`
	Focus   []string `json:"focus"`
	Raw     string   `json:"-"`
}

type Narrator interface {
	Narrate(ctx context.Context, brief *Brief) (*Narrative, error)
}
