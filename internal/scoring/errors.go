package scoring

import (
	"fmt"
	"strings"
)

// IncompleteAssessmentError is returned when scoring is attempted before every
// administered question has an answer. Missing lists the unanswered question
// ids in administered order.
type IncompleteAssessmentError struct {
	Missing []string
}

func (e *IncompleteAssessmentError) Error() string {
	return fmt.Sprintf("assessment incomplete: %d unanswered question(s): %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}

// InvalidAnswerError is returned when an answer names an option that does not
// belong to its question.
type InvalidAnswerError struct {
	QuestionID string
	OptionID   string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("option %q is not an option of question %q", e.OptionID, e.QuestionID)
}
