package user

import "fmt"

// NotFoundError reports an operation that targeted a non-existent id.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User not found with id: %d", e.ID)
}
