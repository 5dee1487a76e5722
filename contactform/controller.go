package contactform

import (
	"context"
	"errors"

	"marketing_site_go/models"
)

// GenericErrorMessage is shown when the server could not be reached or
// answered with something other than the JSON envelope.
const GenericErrorMessage = "Something went wrong. Please try again."

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not finished.
var ErrSubmitInFlight = errors.New("contactform: submission already in progress")

// Notifier displays the outcome of a submission to the visitor
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Sender delivers a submission. *Client implements it.
type Sender interface {
	Send(ctx context.Context, submission models.ContactSubmission) (*models.ContactResponse, error)
}

// OutcomeKind classifies how a submission ended
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota
	OutcomeRejected
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportFailure:
		return "transport_failure"
	}
	return "unknown"
}

// Outcome is the result of a single Submit
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Data    *models.ContactSubmission
	Err     error
}

// Controller owns the modal's form state and submission flow
type Controller struct {
	Sender     Sender
	Notifier   Notifier
	State      FormState
	Open       bool
	Submitting bool
}

// NewController returns a controller with an empty, closed form
func NewController(sender Sender, notifier Notifier) *Controller {
	return &Controller{Sender: sender, Notifier: notifier}
}

// OpenModal shows the form
func (c *Controller) OpenModal() {
	c.Open = true
}

// CloseModal hides the form without touching its fields
func (c *Controller) CloseModal() {
	c.Open = false
}

// SetField edits one field
func (c *Controller) SetField(field, value string) {
	c.State = c.State.Update(field, value)
}

// Submit sends the current form once. On acceptance the form is cleared and
// closed; otherwise the fields and modal stay as they are.
// A Controller is not safe for concurrent use: the Submitting guard only
// rejects re-entrant calls from the goroutine that owns the form.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if c.Submitting {
		return Outcome{}, ErrSubmitInFlight
	}
	c.Submitting = true
	defer func() { c.Submitting = false }()

	resp, err := c.Sender.Send(ctx, c.State.Submission())
	if err != nil {
		c.notifyError(GenericErrorMessage)
		return Outcome{Kind: OutcomeTransportFailure, Message: GenericErrorMessage, Err: err}, nil
	}

	if !resp.Success {
		c.notifyError(resp.Message)
		return Outcome{Kind: OutcomeRejected, Message: resp.Message}, nil
	}

	c.notifySuccess(resp.Message)
	c.State = c.State.Reset()
	c.Open = false
	return Outcome{Kind: OutcomeAccepted, Message: resp.Message, Data: resp.Data}, nil
}

func (c *Controller) notifySuccess(message string) {
	if c.Notifier != nil {
		c.Notifier.Success(message)
	}
}

func (c *Controller) notifyError(message string) {
	if c.Notifier != nil {
		c.Notifier.Error(message)
	}
}
