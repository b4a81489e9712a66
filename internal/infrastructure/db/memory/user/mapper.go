package user

import (
	domain "user-records-api/internal/domain/user"
)

func fromModel(model *User) *domain.User {
	var u = &domain.User{
		ID:          domain.ID(model.ID),
		Email:       model.Email,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		BirthDate:   model.BirthDate,
		Address:     model.Address,
		PhoneNumber: model.PhoneNumber,
	}

	return u
}

func toModel(uDomain domain.User) *User {
	var m = &User{
		ID:          int64(uDomain.ID),
		Email:       uDomain.Email,
		FirstName:   uDomain.FirstName,
		LastName:    uDomain.LastName,
		BirthDate:   uDomain.BirthDate,
		Address:     uDomain.Address,
		PhoneNumber: uDomain.PhoneNumber,
	}

	return m
}
