package catalog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func testOptions() []Option {
	return []Option{
		{ID: "a", Points: 1},
		{ID: "b", Points: 2},
		{ID: "c", Points: 3},
		{ID: "d", Points: 4},
	}
}

func testCatalog(perDomain int) *Catalog {
	c := &Catalog{
		Domains: []Domain{{ID: "mission"}, {ID: "people"}},
		Roles: []Role{
			{ID: "coordinator", Variant: VariantCandidate, QuestionsPerDomain: perDomain},
			{ID: "lead", Variant: VariantManager, QuestionsPerDomain: perDomain},
		},
	}
	c.Insights = testInsights(c.Domains)
	for _, d := range c.Domains {
		for i := 0; i < 3; i++ {
			c.Questions = append(c.Questions, Question{
				ID:      fmt.Sprintf("%s-%d", d.ID, i),
				Domain:  d.ID,
				Options: testOptions(),
			})
		}
	}
	return c
}

func testInsights(domains []Domain) map[string]map[Level]InsightTemplate {
	out := make(map[string]map[Level]InsightTemplate, len(domains))
	for _, d := range domains {
		out[d.ID] = make(map[Level]InsightTemplate, len(Levels))
		for _, level := range Levels {
			out[d.ID][level] = InsightTemplate{Summary: Text{EN: d.ID + " " + string(level)}}
		}
	}
	return out
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"mission", "people", "execution", "growth", "transition"}
	if got := c.DomainIDs(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected canonical order %v", got)
	}

	role, err := c.Role("care-coordinator")
	if err != nil {
		t.Fatalf("care-coordinator role missing: %v", err)
	}
	if role.QuestionsPerDomain != 3 {
		t.Fatalf("expected 3 questions per domain, got %d", role.QuestionsPerDomain)
	}
}

func TestDefaultCatalogIsFullyTranslated(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	texts := map[string]Text{}
	for _, d := range c.Domains {
		texts["domain "+d.ID+" name"] = d.Name
		texts["domain "+d.ID+" description"] = d.Description
	}
	for _, q := range c.Questions {
		texts["question "+q.ID+" scenario"] = q.Scenario
		texts["question "+q.ID+" prompt"] = q.Prompt
		for _, o := range q.Options {
			texts["question "+q.ID+" option "+o.ID] = o.Text
		}
	}
	for _, r := range c.Roles {
		texts["role "+r.ID+" label"] = r.Label
		texts["role "+r.ID+" description"] = r.Description
		texts["role "+r.ID+" insight"] = r.Insight
	}
	for _, a := range c.Actions {
		texts["action "+a.ID+" title"] = a.Title
		texts["action "+a.ID+" description"] = a.Description
	}
	for _, s := range c.Structures {
		texts["structure "+s.ID+" title"] = s.Title
		texts["structure "+s.ID+" description"] = s.Description
	}
	for domain, levels := range c.Insights {
		for level, tmpl := range levels {
			texts["insight "+domain+" "+string(level)+" summary"] = tmpl.Summary
			texts["insight "+domain+" "+string(level)+" next step"] = tmpl.NextStep
		}
	}
	for id, text := range c.Factors {
		texts["factor "+id] = text
	}
	for id, text := range c.Situations {
		texts["situation "+id] = text
	}

	for where, text := range texts {
		if strings.TrimSpace(text.EN) == "" || strings.TrimSpace(text.ES) == "" {
			t.Fatalf("%s is missing a translation: %+v", where, text)
		}
		if text.Pick(Spanish) == text.Pick(English) {
			t.Fatalf("%s has identical english and spanish text %q", where, text.EN)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Catalog) {},
		},
		{
			name:    "three options",
			mutate:  func(c *Catalog) { c.Questions[0].Options = c.Questions[0].Options[:3] },
			wantErr: "has 3 options",
		},
		{
			name:    "tied points",
			mutate:  func(c *Catalog) { c.Questions[1].Options[0].Points = 2 },
			wantErr: "two options worth 2 points",
		},
		{
			name:    "points out of range",
			mutate:  func(c *Catalog) { c.Questions[1].Options[3].Points = 5 },
			wantErr: "has 5 points",
		},
		{
			name:    "unknown domain",
			mutate:  func(c *Catalog) { c.Questions[2].Domain = "nowhere" },
			wantErr: "unknown domain",
		},
		{
			name:    "duplicate question",
			mutate:  func(c *Catalog) { c.Questions[1].ID = c.Questions[0].ID },
			wantErr: "duplicate question",
		},
		{
			name:    "unknown variant",
			mutate:  func(c *Catalog) { c.Roles[0].Variant = "intern" },
			wantErr: "unknown variant",
		},
		{
			name: "action tier",
			mutate: func(c *Catalog) {
				c.Actions = []Action{{ID: "x", Domain: "mission", Difficulty: 4, Timeframe: 1}}
			},
			wantErr: "tiers must be within",
		},
		{
			name: "structure minutes",
			mutate: func(c *Catalog) {
				c.Structures = []Structure{{ID: "s", Domain: "people", GroupSize: 1}}
			},
			wantErr: "positive number of minutes",
		},
		{
			name: "insight level typo",
			mutate: func(c *Catalog) {
				c.Insights["mission"]["growth_area"] = c.Insights["mission"][LevelGrowthArea]
			},
			wantErr: `unknown level "growth_area"`,
		},
		{
			name:    "missing insight",
			mutate:  func(c *Catalog) { delete(c.Insights["people"], LevelDeveloping) },
			wantErr: "missing insight for domain people at level developing",
		},
		{
			name: "insight for unknown domain",
			mutate: func(c *Catalog) {
				c.Insights["nowhere"] = map[Level]InsightTemplate{}
			},
			wantErr: "unknown domain nowhere",
		},
		{
			name:    "question tagged with unknown role",
			mutate:  func(c *Catalog) { c.Questions[0].Roles = []string{"ghost"} },
			wantErr: "unknown role ghost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := testCatalog(3)
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateInsufficientQuestions(t *testing.T) {
	c := testCatalog(4)

	err := c.Validate()
	var insufficient *InsufficientQuestionsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientQuestionsError, got %v", err)
	}
	if insufficient.Want != 4 || insufficient.Have != 3 {
		t.Fatalf("unexpected counts: %+v", insufficient)
	}
	if insufficient.RoleID != "coordinator" || insufficient.DomainID != "mission" {
		t.Fatalf("expected first role and domain to be reported, got %+v", insufficient)
	}
}

func TestRoleUnknown(t *testing.T) {
	c := testCatalog(3)

	_, err := c.Role("astronaut")
	var unknown *UnknownRoleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRoleError, got %v", err)
	}
	if unknown.RoleID != "astronaut" {
		t.Fatalf("unexpected role id %q", unknown.RoleID)
	}
}

func TestQuestionsForPrefersTaggedQuestions(t *testing.T) {
	c := testCatalog(2)
	c.Questions = append(c.Questions, Question{
		ID:      "people-lead",
		Domain:  "people",
		Options: testOptions(),
		Roles:   []string{"lead"},
	})
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lead, _ := c.Role("lead")
	got := c.QuestionsFor(lead, "people")
	if len(got) != 2 || got[0].ID != "people-lead" || got[1].ID != "people-0" {
		t.Fatalf("unexpected selection for lead: %v", ids(got))
	}

	coordinator, _ := c.Role("coordinator")
	got = c.QuestionsFor(coordinator, "people")
	if len(got) != 2 || got[0].ID != "people-0" || got[1].ID != "people-1" {
		t.Fatalf("tagged question leaked into another role: %v", ids(got))
	}
}

func TestQuestionsForDoesNotShareOptions(t *testing.T) {
	c := testCatalog(3)
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	role, _ := c.Role("coordinator")
	got := c.QuestionsFor(role, "mission")
	got[0].Options[0], got[0].Options[3] = got[0].Options[3], got[0].Options[0]
	got[0].Options[1].Points = 99

	again := c.QuestionsFor(role, "mission")
	if again[0].Options[0].ID != "a" || again[0].Options[1].Points != 2 {
		t.Fatalf("catalog options were changed through a selection: %+v", again[0].Options)
	}
}

func TestFromYAMLRejectsInsightLevelTypo(t *testing.T) {
	data := defaultCatalog
	broken := strings.Replace(string(data), "growth-area:", "growth_area:", 1)
	if broken == string(data) {
		t.Fatalf("embedded catalog has no growth-area insight key")
	}

	if _, err := FromYAML([]byte(broken)); err == nil || !strings.Contains(err.Error(), "growth_area") {
		t.Fatalf("expected level typo to be rejected, got %v", err)
	}
}

func TestFromYAMLRejectsUnknownFields(t *testing.T) {
	_, err := FromYAML([]byte("domains:\n- id: mission\n  colour: red\n"))
	if err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestTextPick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   Text
		lang   Language
		expect string
	}{
		{name: "english", text: Text{EN: "hi", ES: "hola"}, lang: English, expect: "hi"},
		{name: "spanish", text: Text{EN: "hi", ES: "hola"}, lang: Spanish, expect: "hola"},
		{name: "missing translation", text: Text{EN: "hi"}, lang: Spanish, expect: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.text.Pick(tt.lang); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}

	if ParseLanguage(" ES ") != Spanish || ParseLanguage("fr") != English {
		t.Fatalf("unexpected language parsing")
	}
}

func ids(qs []Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}
