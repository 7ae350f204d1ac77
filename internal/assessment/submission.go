package assessment

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/spigell/hh-assessor/internal/scoring"
)

// Contact is collected by the presentation layer, outside the assessment.
type Contact struct {
	Name  string `json:"name" mapstructure:"name"`
	Email string `json:"email" mapstructure:"email"`
}

// Submission is the flattened part of a result handed to the waitlist.
type Submission struct {
	ResultID      string            `json:"result_id"`
	RoleID        string            `json:"role_id"`
	Language      string            `json:"language"`
	Overall       int               `json:"overall"`
	TopStrength   string            `json:"top_strength"`
	TopGrowthArea string            `json:"top_growth_area"`
	Situation     string            `json:"situation,omitempty"`
	MatchScore    *int              `json:"match_score,omitempty"`
	Answers       scoring.AnswerSet `json:"answers"`
	Contact       Contact           `json:"contact"`
}

func NewSubmission(r *Result, contact Contact) *Submission {
	answers := make(scoring.AnswerSet, len(r.Answers))
	for k, v := range r.Answers {
		answers[k] = v
	}
	return &Submission{
		ResultID:      r.ID,
		RoleID:        r.RoleID,
		Language:      string(r.Language),
		Overall:       r.OverallPercent,
		TopStrength:   r.TopStrength,
		TopGrowthArea: r.TopGrowthArea,
		Situation:     r.Situation,
		MatchScore:    r.MatchScore,
		Answers:       answers,
		Contact: Contact{
			Name:  strings.TrimSpace(contact.Name),
			Email: strings.TrimSpace(contact.Email),
		},
	}
}

func (s *Submission) Validate() error {
	email := strings.TrimSpace(s.Contact.Email)
	if email == "" {
		return errors.New("contact email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("contact email is not valid")
	}
	return nil
}

// DumpToTmpFile writes the submission as indented JSON and returns the path.
func (s *Submission) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "submission_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return file.Name(), nil
}
