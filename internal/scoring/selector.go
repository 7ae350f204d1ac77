package scoring

import (
	"github.com/spigell/hh-assessor/internal/catalog"
)

// SelectQuestions returns the questions administered to a role, grouped by
// domain in canonical order. The result is the same for every call with the
// same catalog and role.
func SelectQuestions(c *catalog.Catalog, roleID string) ([]catalog.Question, error) {
	role, err := c.Role(roleID)
	if err != nil {
		return nil, err
	}

	questions := make([]catalog.Question, 0, role.QuestionsPerDomain*len(c.Domains))
	for _, d := range c.Domains {
		picked := c.QuestionsFor(role, d.ID)
		if len(picked) < role.QuestionsPerDomain {
			return nil, &catalog.InsufficientQuestionsError{
				RoleID:   role.ID,
				DomainID: d.ID,
				Want:     role.QuestionsPerDomain,
				Have:     len(picked),
			}
		}
		questions = append(questions, picked...)
	}
	return questions, nil
}
