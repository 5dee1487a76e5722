package contactform

import (
	"context"
	"errors"
	"testing"

	"marketing_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	resp  *models.ContactResponse
	err   error
	calls []models.ContactSubmission
	// during runs inside Send, while the controller is submitting
	during func()
}

func (f *fakeSender) Send(ctx context.Context, s models.ContactSubmission) (*models.ContactResponse, error) {
	f.calls = append(f.calls, s)
	if f.during != nil {
		f.during()
	}
	return f.resp, f.err
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string) { n.errors = append(n.errors, message) }

func filledController(sender Sender, notifier Notifier) *Controller {
	c := NewController(sender, notifier)
	c.OpenModal()
	c.SetField(FieldFullName, "Ana Silva")
	c.SetField(FieldEmail, "ana@example.com")
	c.SetField(FieldMessage, "Hello")
	return c
}

func TestControllerSubmit_Accepted(t *testing.T) {
	sender := &fakeSender{resp: &models.ContactResponse{Success: true, Message: "Thanks!"}}
	notifier := &recordingNotifier{}
	c := filledController(sender, notifier)

	var submittingDuringSend bool
	sender.during = func() { submittingDuringSend = c.Submitting }

	outcome, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeAccepted, outcome.Kind)
	assert.Equal(t, "Thanks!", outcome.Message)
	assert.Equal(t, []string{"Thanks!"}, notifier.successes)
	assert.Empty(t, notifier.errors)
	assert.Equal(t, FormState{}, c.State)
	assert.False(t, c.Open)
	assert.False(t, c.Submitting)
	assert.True(t, submittingDuringSend)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "Ana Silva", sender.calls[0].FullName)
	assert.Equal(t, models.StringPtr(""), sender.calls[0].Company)
}

func TestControllerSubmit_Rejected(t *testing.T) {
	sender := &fakeSender{resp: &models.ContactResponse{Success: false, Message: "Valid email is required"}}
	notifier := &recordingNotifier{}
	c := filledController(sender, notifier)
	before := c.State

	outcome, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, outcome.Kind)
	assert.Equal(t, []string{"Valid email is required"}, notifier.errors)
	assert.Empty(t, notifier.successes)
	assert.Equal(t, before, c.State)
	assert.True(t, c.Open)
	assert.False(t, c.Submitting)
}

func TestControllerSubmit_TransportFailure(t *testing.T) {
	sender := &fakeSender{err: &TransportError{Err: errors.New("connection refused")}}
	notifier := &recordingNotifier{}
	c := filledController(sender, notifier)
	before := c.State

	outcome, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeTransportFailure, outcome.Kind)
	assert.Error(t, outcome.Err)
	assert.Equal(t, []string{GenericErrorMessage}, notifier.errors)
	assert.Equal(t, before, c.State)
	assert.True(t, c.Open)
	assert.False(t, c.Submitting)
}

func TestControllerSubmit_InFlightGuard(t *testing.T) {
	sender := &fakeSender{resp: &models.ContactResponse{Success: true, Message: "ok"}}
	c := filledController(sender, nil)

	var nested error
	sender.during = func() {
		_, nested = c.Submit(context.Background())
	}

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSubmitInFlight)
	assert.Len(t, sender.calls, 1)
}

func TestControllerModal(t *testing.T) {
	c := NewController(&fakeSender{}, nil)
	assert.False(t, c.Open)
	c.OpenModal()
	c.SetField(FieldPhone, "555")
	c.CloseModal()
	assert.False(t, c.Open)
	assert.Equal(t, "555", c.State.Phone)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "accepted", OutcomeAccepted.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "transport_failure", OutcomeTransportFailure.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
