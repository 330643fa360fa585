package models

// EnquiryPayload is the body of POST /service/:type/form. Validated against
// the enquiry schema before any record is written.
type EnquiryPayload struct {
	Mobile  int64   `json:"mobile" validate:"required,mobile"`
	Email   string  `json:"email" validate:"required,email"`
	Amount  float64 `json:"amount" validate:"required"`
	Type    string  `json:"type" validate:"required"`
	Message string  `json:"message" validate:"omitempty"`
	Code    string  `json:"code" validate:"omitempty"`
}

// RegistrationPayload is the body of POST /member. Validated against the
// registration schema before any record is written.
type RegistrationPayload struct {
	Mobile         int64  `json:"mobile" validate:"required,mobile"`
	Email          string `json:"email" validate:"required,email"`
	Occupation     string `json:"occupation" validate:"required"`
	CreatePassword string `json:"createpassword" validate:"required"`
}

type CalculateRequest struct {
	Amount float64 `json:"amt"`
	Tenure int32   `json:"tenure"`
}

type RemittanceRequest struct {
	Amount float64 `json:"amt"`
	Mobile int64   `json:"mobile"`
}

// UpdateEnquiryRequest carries the updatable enquiry fields. Only fields
// present in the body are written; the mobile number identifies the record
// and cannot itself be overwritten.
type UpdateEnquiryRequest struct {
	Mobile  int64    `json:"mobile" binding:"required"`
	Email   *string  `json:"email"`
	Amount  *float64 `json:"amount"`
	Type    *string  `json:"type"`
	Message *string  `json:"message"`
	Code    *string  `json:"code"`
}

type UpdatePasswordRequest struct {
	Mobile   int64  `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type MobileRequest struct {
	Mobile int64 `json:"mobile" binding:"required"`
}
