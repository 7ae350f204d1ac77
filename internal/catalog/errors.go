package catalog

import "fmt"

// UnknownRoleError is returned when a role id is not present in the catalog.
type UnknownRoleError struct {
	RoleID string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.RoleID)
}

// InsufficientQuestionsError reports a role that asks for more questions in a
// domain than the catalog holds for it.
type InsufficientQuestionsError struct {
	RoleID   string
	DomainID string
	Want     int
	Have     int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("role %q needs %d questions in domain %q, catalog has %d",
		e.RoleID, e.Want, e.DomainID, e.Have)
}
