package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"marketing_site_go/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// ErrInvalidBody is returned when a request body is not a JSON object of
// the expected field types
var ErrInvalidBody = errors.New("invalid contact request body")

// FieldError is a single violated constraint on a ContactSubmission field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violated constraint, in field declaration order
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, ", ")
}

// fieldMessages maps struct field names to the message shown to the visitor
var fieldMessages = map[string]string{
	"FullName": models.FullNameRequiredMessage,
	"Email":    models.EmailInvalidMessage,
}

var fieldNames = map[string]string{
	"FullName": "fullName",
	"Email":    "email",
}

// fieldOrder is the wire order of the submission fields
var fieldOrder = map[string]int{
	"fullName": 0,
	"company":  1,
	"email":    2,
	"phone":    3,
	"message":  4,
}

var optionalFields = []string{"company", "phone", "message"}

var (
	contactValidate = validator.New(validator.WithRequiredStructEnabled())
	logPolicy       = bluemonday.StrictPolicy()
)

// ParseContactSubmission decodes a request body and validates it.
// Malformed JSON wraps ErrInvalidBody, schema violations are a *ValidationError.
func ParseContactSubmission(body []byte) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	if err := json.Unmarshal(body, &submission); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	// Absent and null optional fields both decode to nil, so look at the raw object
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	var nulls []FieldError
	for _, name := range optionalFields {
		if v, ok := raw[name]; ok && string(v) == "null" {
			nulls = append(nulls, FieldError{Field: name, Message: models.NullFieldMessage})
		}
	}

	validated, err := ValidateContactSubmission(&submission)
	if err == nil && len(nulls) == 0 {
		return validated, nil
	}

	result := &ValidationError{Fields: nulls}
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		result.Fields = append(result.Fields, verr.Fields...)
	}
	sort.SliceStable(result.Fields, func(i, j int) bool {
		return fieldOrder[result.Fields[i].Field] < fieldOrder[result.Fields[j].Field]
	})
	return nil, result
}

// ValidateContactSubmission checks a submission against the contact schema.
// It returns the validated submission or a *ValidationError.
func ValidateContactSubmission(s *models.ContactSubmission) (*models.ContactSubmission, error) {
	if s == nil {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "fullName", Message: models.FullNameRequiredMessage},
			{Field: "email", Message: models.EmailInvalidMessage},
		}}
	}

	err := contactValidate.Struct(s)
	if err == nil {
		return s, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("failed to validate contact submission: %w", err)
	}

	seen := make(map[string]bool)
	result := &ValidationError{}
	for _, fe := range verrs {
		if seen[fe.StructField()] {
			continue
		}
		seen[fe.StructField()] = true
		result.Fields = append(result.Fields, FieldError{
			Field:   fieldNames[fe.StructField()],
			Message: fieldMessages[fe.StructField()],
		})
	}
	return nil, result
}

// DescribeSubmission renders a submission on one line for the server log.
// Markup is stripped so visitor input never lands in the log verbatim.
func DescribeSubmission(s *models.ContactSubmission) string {
	if s == nil {
		return ""
	}
	clean := func(v string) string {
		v = logPolicy.Sanitize(v)
		v = strings.ReplaceAll(v, "\n", " ")
		return strings.TrimSpace(v)
	}
	opt := func(v *string) string {
		if v == nil {
			return "-"
		}
		return clean(*v)
	}
	return fmt.Sprintf("name=%q email=%q company=%q phone=%q message=%q",
		clean(s.FullName), clean(s.Email), opt(s.Company), opt(s.Phone), truncate(opt(s.Message), 200))
}

// truncate cuts s to at most maxLen bytes without splitting a rune
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
