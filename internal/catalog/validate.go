package catalog

import (
	"fmt"
	"strings"
)

const (
	// OptionsPerQuestion is the fixed number of options every question carries.
	OptionsPerQuestion = 4
	// MaxPoints is the value of the best option of a question.
	MaxPoints = 4
	// MaxTier bounds the difficulty, timeframe and group size tiers.
	MaxTier = 3
)

// Validate checks the integrity of the catalog and indexes its domains.
// It returns the first problem found; a catalog that fails validation must
// not be used.
func (c *Catalog) Validate() error {
	if len(c.Domains) == 0 {
		return fmt.Errorf("catalog.domains is required")
	}

	index := make(map[string]int, len(c.Domains))
	for i, d := range c.Domains {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("domain #%d has empty id", i)
		}
		if _, dup := index[d.ID]; dup {
			return fmt.Errorf("duplicate domain %s", d.ID)
		}
		index[d.ID] = i
	}

	if err := c.validateQuestions(index); err != nil {
		return err
	}

	if len(c.Roles) == 0 {
		return fmt.Errorf("catalog.roles is required")
	}
	roles := make(map[string]struct{}, len(c.Roles))
	for _, r := range c.Roles {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("role with empty id")
		}
		if _, dup := roles[r.ID]; dup {
			return fmt.Errorf("duplicate role %s", r.ID)
		}
		roles[r.ID] = struct{}{}
		if r.Variant != VariantCandidate && r.Variant != VariantManager {
			return fmt.Errorf("role %s has unknown variant %q", r.ID, r.Variant)
		}
		if r.QuestionsPerDomain < 1 {
			return fmt.Errorf("role %s must administer at least one question per domain", r.ID)
		}
	}

	for _, q := range c.Questions {
		for _, r := range q.Roles {
			if _, ok := roles[r]; !ok {
				return fmt.Errorf("question %s is tagged with unknown role %s", q.ID, r)
			}
		}
	}

	for _, r := range c.Roles {
		for _, d := range c.Domains {
			if have := len(c.QuestionsFor(r, d.ID)); have < r.QuestionsPerDomain {
				return &InsufficientQuestionsError{
					RoleID:   r.ID,
					DomainID: d.ID,
					Want:     r.QuestionsPerDomain,
					Have:     have,
				}
			}
		}
	}

	if err := c.validateRecommendations(index); err != nil {
		return err
	}

	if err := c.validateInsights(index); err != nil {
		return err
	}

	orgs := make(map[string]struct{}, len(c.Organizations))
	for _, o := range c.Organizations {
		key := strings.ToLower(strings.TrimSpace(o.ID))
		if key == "" {
			return fmt.Errorf("organization with empty id")
		}
		if _, dup := orgs[key]; dup {
			return fmt.Errorf("duplicate organization %s", o.ID)
		}
		orgs[key] = struct{}{}
	}

	c.domainIndex = index
	return nil
}

func (c *Catalog) validateQuestions(domains map[string]int) error {
	seen := make(map[string]struct{}, len(c.Questions))
	for _, q := range c.Questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("question with empty id")
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = struct{}{}

		if _, ok := domains[q.Domain]; !ok {
			return fmt.Errorf("question %s references unknown domain %q", q.ID, q.Domain)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %s has %d options, want %d", q.ID, len(q.Options), OptionsPerQuestion)
		}

		ids := make(map[string]struct{}, OptionsPerQuestion)
		points := make(map[int]struct{}, OptionsPerQuestion)
		for _, o := range q.Options {
			if strings.TrimSpace(o.ID) == "" {
				return fmt.Errorf("question %s has an option with empty id", q.ID)
			}
			if _, dup := ids[o.ID]; dup {
				return fmt.Errorf("question %s has duplicate option %s", q.ID, o.ID)
			}
			ids[o.ID] = struct{}{}

			if o.Points < 1 || o.Points > MaxPoints {
				return fmt.Errorf("question %s option %s has %d points, want 1..%d", q.ID, o.ID, o.Points, MaxPoints)
			}
			if _, dup := points[o.Points]; dup {
				return fmt.Errorf("question %s has two options worth %d points", q.ID, o.Points)
			}
			points[o.Points] = struct{}{}
		}
	}
	return nil
}

func (c *Catalog) validateRecommendations(domains map[string]int) error {
	seen := make(map[string]struct{}, len(c.Actions))
	for _, a := range c.Actions {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("action with empty id")
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate action %s", a.ID)
		}
		seen[a.ID] = struct{}{}
		if _, ok := domains[a.Domain]; !ok {
			return fmt.Errorf("action %s references unknown domain %q", a.ID, a.Domain)
		}
		if !validTier(a.Difficulty) || !validTier(a.Timeframe) {
			return fmt.Errorf("action %s tiers must be within 1..%d", a.ID, MaxTier)
		}
	}

	seen = make(map[string]struct{}, len(c.Structures))
	for _, s := range c.Structures {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("structure with empty id")
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate structure %s", s.ID)
		}
		seen[s.ID] = struct{}{}
		if _, ok := domains[s.Domain]; !ok {
			return fmt.Errorf("structure %s references unknown domain %q", s.ID, s.Domain)
		}
		if s.Minutes <= 0 {
			return fmt.Errorf("structure %s must last a positive number of minutes", s.ID)
		}
		if !validTier(s.GroupSize) {
			return fmt.Errorf("structure %s group size must be within 1..%d", s.ID, MaxTier)
		}
	}
	return nil
}

func validTier(t int) bool {
	return t >= 1 && t <= MaxTier
}

// validateInsights requires a template for every domain and level. Map keys
// are not covered by strict YAML decoding, so typos are caught here.
func (c *Catalog) validateInsights(domains map[string]int) error {
	known := make(map[Level]struct{}, len(Levels))
	for _, l := range Levels {
		known[l] = struct{}{}
	}

	for domainID, byLevel := range c.Insights {
		if _, ok := domains[domainID]; !ok {
			return fmt.Errorf("insights reference unknown domain %s", domainID)
		}
		for level := range byLevel {
			if _, ok := known[level]; !ok {
				return fmt.Errorf("insights for %s use unknown level %q", domainID, level)
			}
		}
	}

	for _, d := range c.Domains {
		for _, level := range Levels {
			if _, ok := c.Insights[d.ID][level]; !ok {
				return fmt.Errorf("missing insight for domain %s at level %s", d.ID, level)
			}
		}
	}
	return nil
}
