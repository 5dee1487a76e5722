package models

// Response texts returned by the contact endpoint
const (
	ContactSuccessMessage   = "Thank you for your inquiry! We'll get back to you within 24 hours."
	ContactFailureMessage   = "Something went wrong. Please try again later."
	ValidationFailedPrefix  = "Please check your form data: "
	FullNameRequiredMessage = "Full name is required"
	EmailInvalidMessage     = "Valid email is required"
	NullFieldMessage        = "Expected string, received null"
	InvalidBodyMessage      = "Invalid request body"
)

// ContactSubmission is a single inquiry sent from the landing page modal.
// Optional fields are pointers so an absent field is echoed back as absent.
type ContactSubmission struct {
	FullName string  `json:"fullName" validate:"required"`
	Company  *string `json:"company,omitempty"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Message  *string `json:"message,omitempty"`
}

// ContactResponse is the envelope for every /api response
type ContactResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *ContactSubmission `json:"data,omitempty"`
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
