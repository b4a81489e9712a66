package user

import "time"

type (
	User struct {
		ID          int64
		Email       string
		FirstName   string
		LastName    string
		BirthDate   time.Time
		Address     string
		PhoneNumber string
	}
	Users []*User
)
