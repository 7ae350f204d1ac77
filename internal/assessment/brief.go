package assessment

import "github.com/spigell/hh-assessor/internal/ai"

// Brief strips the result down to what a narrative provider may see.
func (r *Result) Brief() *ai.Brief {
	b := &ai.Brief{
		Role:          r.RoleLabel,
		Language:      string(r.Language),
		Overall:       r.OverallPercent,
		TopStrength:   r.TopStrength,
		TopGrowthArea: r.TopGrowthArea,
		Situation:     r.Situation,
	}
	for _, d := range r.Domains {
		b.Domains = append(b.Domains, ai.DomainBrief{
			ID:      d.Domain,
			Name:    d.Name,
			Percent: d.Percent,
			Level:   string(d.Level),
		})
	}
	for _, f := range r.FailureFactors {
		b.Factors = append(b.Factors, f.Factor)
	}
	return b
}
