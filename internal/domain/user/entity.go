package user

import "time"

type (
	ID   int64
	User struct {
		ID          ID
		Email       string
		FirstName   string
		LastName    string
		BirthDate   time.Time
		Address     string
		PhoneNumber string
	}
	Users []*User

	// Patch carries a partial update. Nil fields are left untouched.
	Patch struct {
		Email       *string
		FirstName   *string
		LastName    *string
		BirthDate   *time.Time
		Address     *string
		PhoneNumber *string
	}
)
