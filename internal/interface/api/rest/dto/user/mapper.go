package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	domain "user-records-api/internal/domain/user"
)

// DateLayout is the wire format for every calendar date.
const DateLayout = "2006-01-02"

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:          int64(uDomain.ID),
		Email:       uDomain.Email,
		FirstName:   uDomain.FirstName,
		LastName:    uDomain.LastName,
		Address:     uDomain.Address,
		PhoneNumber: uDomain.PhoneNumber,
	}
	if !uDomain.BirthDate.IsZero() {
		u.BirthDate = uDomain.BirthDate.Format(DateLayout)
	}

	return u
}

func ToResponseUsers(usDomain domain.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) (domain.User, error) {
	var u = domain.User{
		Email:       strings.TrimSpace(uRequest.Email),
		FirstName:   cleanName(uRequest.FirstName),
		LastName:    cleanName(uRequest.LastName),
		Address:     strings.TrimSpace(uRequest.Address),
		PhoneNumber: strings.TrimSpace(uRequest.PhoneNumber),
	}

	if bd := strings.TrimSpace(uRequest.BirthDate); bd != "" {
		d, err := time.Parse(DateLayout, bd)
		if err != nil {
			return domain.User{}, fmt.Errorf("invalid birthDate %q, want %s", bd, DateLayout)
		}
		u.BirthDate = d
	}

	return u, nil
}

func ToDomainPatch(pRequest PatchRequest) (domain.Patch, error) {
	var p = domain.Patch{
		Address:     pRequest.Address,
		PhoneNumber: pRequest.PhoneNumber,
	}

	if pRequest.Email != nil {
		email := strings.TrimSpace(*pRequest.Email)
		p.Email = &email
	}
	if pRequest.FirstName != nil {
		name := cleanName(*pRequest.FirstName)
		p.FirstName = &name
	}
	if pRequest.LastName != nil {
		name := cleanName(*pRequest.LastName)
		p.LastName = &name
	}
	if pRequest.BirthDate != nil {
		d, err := time.Parse(DateLayout, strings.TrimSpace(*pRequest.BirthDate))
		if err != nil {
			return domain.Patch{}, fmt.Errorf("invalid birthDate %q, want %s", *pRequest.BirthDate, DateLayout)
		}
		p.BirthDate = &d
	}

	return p, nil
}

// cleanName trims and NFC-normalizes a human name so that visually
// identical names compare equal regardless of the client's encoding.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
