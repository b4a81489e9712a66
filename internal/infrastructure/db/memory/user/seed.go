package user

import (
	"time"

	domain "user-records-api/internal/domain/user"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedDemo preloads a handful of records for local runs.
func (r *Repository) SeedDemo() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range []domain.User{
		{Email: "email1@email.com", FirstName: "Anton", LastName: "Smith", BirthDate: date(2000, time.December, 30), Address: "Kyiv city", PhoneNumber: "+380912345678"},
		{Email: "email2@email.com", FirstName: "Andrew", LastName: "Kondratenko", BirthDate: date(2002, time.November, 3), Address: "Lviv city", PhoneNumber: "+380002345678"},
		{Email: "email3@email.com", FirstName: "Hanna", LastName: "Vovk", BirthDate: date(2004, time.May, 25), Address: "Kharkiv city", PhoneNumber: "+380012345678"},
		{Email: "email4@email.com", FirstName: "Peter", LastName: "Levchenko", BirthDate: date(1995, time.December, 1), Address: "Kyiv city", PhoneNumber: "+380012345000"},
		{Email: "email5@email.com", FirstName: "Jolanda", LastName: "Henhridy", BirthDate: date(2004, time.February, 25), Address: "Berlin city", PhoneNumber: "+380000000000"},
	} {
		r.insert(u)
	}
}
