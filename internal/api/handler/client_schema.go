package handler

// portalLoginRequest is one portal's credential pair. Neither field is
// required: incomplete entries are accepted and stored untouched.
type portalLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createClientRequest struct {
	FullName          string                        `json:"fullName" validate:"required"`
	Email             string                        `json:"email"    validate:"omitempty,email"`
	Phone             string                        `json:"phone"    validate:"required"`
	CNIC              string                        `json:"cnic"`
	NTN               string                        `json:"ntn"`
	PortalCredentials map[string]portalLoginRequest `json:"portalCredentials" validate:"omitempty,dive,keys,oneof=fbr secp psw pra ipo,endkeys"`
	Notes             string                        `json:"notes"`
}

// updateClientRequest is a partial update; absent fields stay unchanged.
// A present portalCredentials map replaces the stored one wholesale.
type updateClientRequest struct {
	FullName          *string                       `json:"fullName" validate:"omitempty,min=1"`
	Email             *string                       `json:"email"    validate:"omitempty,email"`
	Phone             *string                       `json:"phone"    validate:"omitempty,min=1"`
	CNIC              *string                       `json:"cnic"`
	NTN               *string                       `json:"ntn"`
	PortalCredentials map[string]portalLoginRequest `json:"portalCredentials" validate:"omitempty,dive,keys,oneof=fbr secp psw pra ipo,endkeys"`
	Notes             *string                       `json:"notes"`
}
