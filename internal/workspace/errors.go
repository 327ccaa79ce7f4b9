package workspace

import "fmt"

// NotFoundError reports a detail lookup whose entity came back null.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Entity, e.ID)
}
