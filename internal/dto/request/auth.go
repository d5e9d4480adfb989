package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=4,max=25"`
	Email    string `json:"email" validate:"required,email,min=6,max=100"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`

	// Filled from the HTTP request, stored on the session row.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}
