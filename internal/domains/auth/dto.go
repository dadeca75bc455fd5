package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest is the body of POST /api/cms/auth.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required"), validation.Length(1, 512)),
	)
}

// StatusResponse is returned by GET /api/cms/auth.
type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
