// Package contactform drives the landing page contact modal from Go:
// it owns the form fields, submits them once and interprets the result.
package contactform

import "marketing_site_go/models"

// Field names as they appear on the wire
const (
	FieldFullName = "fullName"
	FieldCompany  = "company"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
)

// Fields lists the form fields in display order
var Fields = []string{FieldFullName, FieldCompany, FieldEmail, FieldPhone, FieldMessage}

// FormState is the editable record behind the modal. The zero value is an
// empty form.
type FormState struct {
	FullName string
	Company  string
	Email    string
	Phone    string
	Message  string
}

// Update returns a copy of s with a single field replaced.
// Unknown field names leave the state unchanged.
func (s FormState) Update(field, value string) FormState {
	switch field {
	case FieldFullName:
		s.FullName = value
	case FieldCompany:
		s.Company = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// Get returns the value of a field, or "" for unknown names
func (s FormState) Get(field string) string {
	switch field {
	case FieldFullName:
		return s.FullName
	case FieldCompany:
		return s.Company
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Reset returns an empty form
func (s FormState) Reset() FormState {
	return FormState{}
}

// Submission converts the form into the request payload. Every field is
// sent, blank ones as empty strings.
func (s FormState) Submission() models.ContactSubmission {
	return models.ContactSubmission{
		FullName: s.FullName,
		Company:  models.StringPtr(s.Company),
		Email:    s.Email,
		Phone:    models.StringPtr(s.Phone),
		Message:  models.StringPtr(s.Message),
	}
}
