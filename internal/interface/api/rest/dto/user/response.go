package user

type (
	User struct {
		ID          int64  `json:"id"`
		Email       string `json:"email"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		BirthDate   string `json:"birthDate"`
		Address     string `json:"address,omitempty"`
		PhoneNumber string `json:"phoneNumber,omitempty"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
