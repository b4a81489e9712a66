package user

type (
	// Request is a full user payload for create and replace.
	Request struct {
		Email       string `json:"email"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		BirthDate   string `json:"birthDate"`
		Address     string `json:"address"`
		PhoneNumber string `json:"phoneNumber"`
	}
	// PatchRequest carries only the fields to overwrite; absent fields
	// stay nil and leave the stored value untouched.
	PatchRequest struct {
		Email       *string `json:"email"`
		FirstName   *string `json:"firstName"`
		LastName    *string `json:"lastName"`
		BirthDate   *string `json:"birthDate"`
		Address     *string `json:"address"`
		PhoneNumber *string `json:"phoneNumber"`
	}
)
