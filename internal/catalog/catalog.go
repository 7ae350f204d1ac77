package catalog

import (
	"slices"
	"strings"
)

// Language selects one of the two pre-authored strings of a Text.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ParseLanguage maps user input to a supported language, defaulting to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es", "spanish", "español":
		return Spanish
	default:
		return English
	}
}

// Text holds a display string in both supported languages.
type Text struct {
	EN string `yaml:"en" json:"en"`
	ES string `yaml:"es" json:"es"`
}

// Pick returns the string for lang, falling back to English when the
// translation is missing.
func (t Text) Pick(lang Language) string {
	if lang == Spanish && strings.TrimSpace(t.ES) != "" {
		return t.ES
	}
	return t.EN
}

// IsZero reports whether neither language carries text.
func (t Text) IsZero() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.ES) == ""
}

// Variant distinguishes the candidate and manager flavours of the assessment.
type Variant string

const (
	VariantCandidate Variant = "candidate"
	VariantManager   Variant = "manager"
)

// Level is the qualitative classification of a domain percentage.
type Level string

const (
	LevelStrength   Level = "strength"
	LevelDeveloping Level = "developing"
	LevelGrowthArea Level = "growth-area"
)

// Levels lists the levels from best to worst.
var Levels = []Level{LevelStrength, LevelDeveloping, LevelGrowthArea}

type Domain struct {
	ID          string `yaml:"id"`
	Name        Text   `yaml:"name"`
	Description Text   `yaml:"description"`
}

type Option struct {
	ID     string `yaml:"id"`
	Text   Text   `yaml:"text"`
	Points int    `yaml:"points"`
}

type Question struct {
	ID       string   `yaml:"id"`
	Domain   string   `yaml:"domain"`
	Scenario Text     `yaml:"scenario"`
	Prompt   Text     `yaml:"prompt"`
	Options  []Option `yaml:"options"`
	// Roles narrows the question to specific roles. Empty means any role.
	Roles []string `yaml:"roles,omitempty"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func (q Question) taggedFor(roleID string) bool {
	for _, r := range q.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

type Role struct {
	ID                 string  `yaml:"id"`
	Label              Text    `yaml:"label"`
	Description        Text    `yaml:"description"`
	Variant            Variant `yaml:"variant"`
	QuestionsPerDomain int     `yaml:"questions_per_domain"`
	Insight            Text    `yaml:"insight"`
}

type Action struct {
	ID          string `yaml:"id"`
	Domain      string `yaml:"domain"`
	Title       Text   `yaml:"title"`
	Description Text   `yaml:"description"`
	// Difficulty and Timeframe are tiers from 1 (easiest, fastest) to 3.
	Difficulty int `yaml:"difficulty"`
	Timeframe  int `yaml:"timeframe"`
}

type Structure struct {
	ID          string `yaml:"id"`
	Domain      string `yaml:"domain"`
	Title       Text   `yaml:"title"`
	Description Text   `yaml:"description"`
	Minutes     int    `yaml:"minutes"`
	// GroupSize is a tier: 1 pair, 2 small group, 3 whole team.
	GroupSize int `yaml:"group_size"`
}

// Organization is the hiring profile a candidate is matched against.
type Organization struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	EHRSystem string   `yaml:"ehr_system"`
	Programs  []string `yaml:"programs"`
}

type InsightTemplate struct {
	Summary  Text `yaml:"summary"`
	NextStep Text `yaml:"next_step"`
}

// Catalog is the immutable reference data read by the engine.
type Catalog struct {
	Domains       []Domain                             `yaml:"domains"`
	Questions     []Question                           `yaml:"questions"`
	Roles         []Role                               `yaml:"roles"`
	Actions       []Action                             `yaml:"actions"`
	Structures    []Structure                          `yaml:"structures"`
	Organizations []Organization                       `yaml:"organizations"`
	Insights      map[string]map[Level]InsightTemplate `yaml:"insights"`
	Factors       map[string]Text                      `yaml:"factors"`
	Situations    map[string]Text                      `yaml:"situations"`

	domainIndex map[string]int
}

// DomainIDs returns domain ids in canonical order.
func (c *Catalog) DomainIDs() []string {
	ids := make([]string, 0, len(c.Domains))
	for _, d := range c.Domains {
		ids = append(ids, d.ID)
	}
	return ids
}

// DomainRank returns the canonical position of a domain, or -1 when unknown.
func (c *Catalog) DomainRank(id string) int {
	if c.domainIndex == nil {
		for i, d := range c.Domains {
			if d.ID == id {
				return i
			}
		}
		return -1
	}
	if i, ok := c.domainIndex[id]; ok {
		return i
	}
	return -1
}

func (c *Catalog) Domain(id string) (Domain, bool) {
	if i := c.DomainRank(id); i >= 0 {
		return c.Domains[i], true
	}
	return Domain{}, false
}

// Role looks up a role by id.
func (c *Catalog) Role(id string) (Role, error) {
	for _, r := range c.Roles {
		if r.ID == id {
			return r, nil
		}
	}
	return Role{}, &UnknownRoleError{RoleID: id}
}

func (c *Catalog) Organization(id string) (Organization, bool) {
	for _, o := range c.Organizations {
		if strings.EqualFold(o.ID, strings.TrimSpace(id)) {
			return o, true
		}
	}
	return Organization{}, false
}

// Insight returns the template for a domain at a level.
func (c *Catalog) Insight(domainID string, level Level) (InsightTemplate, bool) {
	byLevel, ok := c.Insights[domainID]
	if !ok {
		return InsightTemplate{}, false
	}
	t, ok := byLevel[level]
	return t, ok
}

// QuestionsFor applies the selection rule of a role to one domain: questions
// tagged with the role come first, then untagged ones, both in catalog order.
// The result may be shorter than the role's count; Validate guards that.
// Returned questions own their option slices.
func (c *Catalog) QuestionsFor(role Role, domainID string) []Question {
	var tagged, general []Question
	for _, q := range c.Questions {
		if q.Domain != domainID {
			continue
		}
		switch {
		case q.taggedFor(role.ID):
			tagged = append(tagged, q)
		case len(q.Roles) == 0:
			general = append(general, q)
		}
	}

	picked := append(tagged, general...)
	if len(picked) > role.QuestionsPerDomain {
		picked = picked[:role.QuestionsPerDomain]
	}
	for i := range picked {
		picked[i].Options = slices.Clone(picked[i].Options)
	}
	return picked
}
