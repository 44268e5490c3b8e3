package dto

// CreateContactRequest is the public contact form payload. Status is not
// client-settable; every submission starts at "new".
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type CreateContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// UpdateSubmissionStatusRequest moves a submission out of "new". Only the
// two triaged states are valid targets.
type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=read replied"`
}
