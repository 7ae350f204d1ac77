package assessment

import (
	"fmt"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/scoring"
)

// Session is the in-progress answer set of one respondent. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	RoleID    string
	questions []catalog.Question
	answers   scoring.AnswerSet
	cursor    int
}

// NewSession starts a session for a role with questions in display order.
func (e *Engine) NewSession(roleID string) (*Session, error) {
	questions, err := e.Questions(roleID)
	if err != nil {
		return nil, err
	}
	return &Session{
		RoleID:    roleID,
		questions: questions,
		answers:   make(scoring.AnswerSet, len(questions)),
	}, nil
}

// Current returns the question under the cursor. ok is false once the cursor
// is past the last question.
func (s *Session) Current() (q catalog.Question, ok bool) {
	if s.cursor >= len(s.questions) {
		return catalog.Question{}, false
	}
	return s.questions[s.cursor], true
}

// Position returns the 1-based index of the current question and the total.
func (s *Session) Position() (int, int) {
	return min(s.cursor+1, len(s.questions)), len(s.questions)
}

// Answer records the option for a question and moves the cursor past it.
func (s *Session) Answer(questionID, optionID string) error {
	idx := -1
	for i, q := range s.questions {
		if q.ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("question %q is not part of this session", questionID)
	}
	if _, ok := s.questions[idx].Option(optionID); !ok {
		return &scoring.InvalidAnswerError{QuestionID: questionID, OptionID: optionID}
	}

	s.answers[questionID] = optionID
	if idx == s.cursor {
		s.cursor++
	}
	return nil
}

// Back moves the cursor to the previous question. The recorded answer stays
// until it is replaced.
func (s *Session) Back() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Chosen returns the recorded option of a question, if any.
func (s *Session) Chosen(questionID string) (string, bool) {
	id, ok := s.answers[questionID]
	return id, ok
}

// Progress reports how many questions are answered out of the total.
func (s *Session) Progress() (answered, total int) {
	return len(s.answers), len(s.questions)
}

func (s *Session) Complete() bool {
	return len(s.Missing()) == 0
}

// Missing lists unanswered question ids in display order.
func (s *Session) Missing() []string {
	var missing []string
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Answers returns a copy of the answer set.
func (s *Session) Answers() scoring.AnswerSet {
	out := make(scoring.AnswerSet, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Questions returns the administered questions in display order.
func (s *Session) Questions() []catalog.Question {
	out := make([]catalog.Question, len(s.questions))
	copy(out, s.questions)
	return out
}
