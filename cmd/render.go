package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spigell/hh-assessor/internal/ai"
	"github.com/spigell/hh-assessor/internal/assessment"
	"github.com/spigell/hh-assessor/internal/catalog"
)

func newTable(w io.Writer, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	return tw
}

func renderResult(w io.Writer, r *assessment.Result, narrative *ai.Narrative) {
	fmt.Fprintf(w, "\n%s (%s), overall %d%%\n", r.RoleLabel, r.RoleID, r.OverallPercent)
	if r.RoleInsight != "" {
		fmt.Fprintln(w, r.RoleInsight)
	}
	fmt.Fprintln(w)

	domains := newTable(w, "Domains")
	domains.AppendHeader(table.Row{"Domain", "Points", "Score", "Level"})
	for _, d := range r.Domains {
		domains.AppendRow(table.Row{d.Name, fmt.Sprintf("%d/%d", d.Raw, d.Max), fmt.Sprintf("%d%%", d.Percent), levelLabel(d.Level)})
	}
	domains.AppendFooter(table.Row{"Overall", "", fmt.Sprintf("%d%%", r.OverallPercent), ""})
	domains.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	domains.Render()

	summary := newTable(w, "")
	summary.AppendRow(table.Row{"Top strength", domainName(r, r.TopStrength)})
	summary.AppendRow(table.Row{"Top growth area", domainName(r, r.TopGrowthArea)})
	if r.Situation != "" {
		summary.AppendRow(table.Row{"Situation", r.Situation})
		summary.AppendRow(table.Row{"", r.SituationText})
	}
	if r.MatchScore != nil {
		summary.AppendRow(table.Row{"Match with " + r.Organization, fmt.Sprintf("%d%%", *r.MatchScore)})
	}
	summary.Render()

	if len(r.FailureFactors) > 0 {
		factors := newTable(w, "Watch out for")
		factors.AppendHeader(table.Row{"Factor", "Coaching"})
		for _, f := range r.FailureFactors {
			factors.AppendRow(table.Row{f.Factor, f.Coaching})
		}
		factors.Render()
	}

	renderInsights(w, r.Insights.Strengths, "Strengths")
	renderInsights(w, r.Insights.GrowthAreas, "Growth areas")
	renderInsights(w, r.Insights.NextSteps, "Next steps")

	if len(r.Actions) > 0 {
		actions := newTable(w, "Development actions")
		actions.AppendHeader(table.Row{"Action", "Domain", "Difficulty", "Timeframe"})
		for _, a := range r.Actions {
			actions.AppendRow(table.Row{a.Title, domainName(r, a.Domain), tier(a.Difficulty), tier(a.Timeframe)})
		}
		actions.Render()
	}

	if len(r.Structures) > 0 {
		structures := newTable(w, "Team structures")
		structures.AppendHeader(table.Row{"Structure", "Domain", "Minutes", "Group size"})
		for _, s := range r.Structures {
			structures.AppendRow(table.Row{s.Title, domainName(r, s.Domain), s.Minutes, tier(s.GroupSize)})
		}
		structures.Render()
	}

	if narrative != nil {
		fmt.Fprintf(w, "\n%s\n", narrative.Summary)
		for _, f := range narrative.Focus {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
}

func renderInsights(w io.Writer, lines []string, title string) {
	if len(lines) == 0 {
		return
	}
	tw := newTable(w, title)
	for _, l := range lines {
		tw.AppendRow(table.Row{l})
	}
	tw.Render()
}

func renderCatalog(w io.Writer, c *catalog.Catalog, lang catalog.Language) {
	roles := newTable(w, "Roles")
	header := table.Row{"Role", "Label", "Variant"}
	for _, id := range c.DomainIDs() {
		header = append(header, id)
	}
	roles.AppendHeader(header)

	for _, role := range c.Roles {
		row := table.Row{role.ID, role.Label.Pick(lang), role.Variant}
		for _, id := range c.DomainIDs() {
			row = append(row, len(c.QuestionsFor(role, id)))
		}
		roles.AppendRow(row)
	}
	roles.Render()

	content := newTable(w, "Content")
	content.AppendHeader(table.Row{"Domain", "Questions", "Actions", "Structures"})
	for _, d := range c.Domains {
		var questions, actions, structures int
		for _, q := range c.Questions {
			if q.Domain == d.ID {
				questions++
			}
		}
		for _, a := range c.Actions {
			if a.Domain == d.ID {
				actions++
			}
		}
		for _, s := range c.Structures {
			if s.Domain == d.ID {
				structures++
			}
		}
		content.AppendRow(table.Row{d.Name.Pick(lang), questions, actions, structures})
	}
	content.AppendFooter(table.Row{"Organizations", len(c.Organizations), "", ""})
	content.Render()
}

func domainName(r *assessment.Result, id string) string {
	if d, ok := r.Domain(id); ok {
		return d.Name
	}
	return id
}

func levelLabel(l catalog.Level) string {
	return strings.ReplaceAll(string(l), "-", " ")
}

func tier(n int) string {
	switch n {
	case 1:
		return "low"
	case 2:
		return "medium"
	case 3:
		return "high"
	default:
		return "-"
	}
}
