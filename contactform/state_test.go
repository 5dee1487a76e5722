package contactform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormStateUpdate(t *testing.T) {
	var s FormState
	assert.Equal(t, FormState{}, s)

	updated := s.Update(FieldFullName, "Ana Silva")
	assert.Equal(t, "Ana Silva", updated.FullName)
	assert.Empty(t, s.FullName, "Update must not mutate the receiver")

	updated = updated.Update(FieldEmail, "ana@example.com").Update(FieldCompany, "Acme")
	assert.Equal(t, FormState{FullName: "Ana Silva", Email: "ana@example.com", Company: "Acme"}, updated)

	assert.Equal(t, updated, updated.Update("budget", "1M"))
}

func TestFormStateGet(t *testing.T) {
	s := FormState{FullName: "a", Company: "b", Email: "c", Phone: "d", Message: "e"}
	var got []string
	for _, f := range Fields {
		got = append(got, s.Get(f))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Empty(t, s.Get("unknown"))
}

func TestFormStateReset(t *testing.T) {
	s := FormState{FullName: "Ana", Message: "hi"}
	assert.Equal(t, FormState{}, s.Reset())
}

func TestFormStateSubmission(t *testing.T) {
	t.Run("Blank optional fields sent empty", func(t *testing.T) {
		s := FormState{}.Update(FieldFullName, "Ana").Update(FieldEmail, "ana@example.com")

		body, err := json.Marshal(s.Submission())
		require.NoError(t, err)
		assert.JSONEq(t, `{"fullName":"Ana","company":"","email":"ana@example.com","phone":"","message":""}`, string(body))
	})

	t.Run("Empty form sends every field", func(t *testing.T) {
		body, err := json.Marshal(FormState{}.Submission())
		require.NoError(t, err)
		assert.JSONEq(t, `{"fullName":"","company":"","email":"","phone":"","message":""}`, string(body))
	})

	t.Run("Filled optional fields sent", func(t *testing.T) {
		s := FormState{FullName: "Ana", Email: "ana@example.com", Company: "Acme", Phone: "555", Message: "hi"}
		sub := s.Submission()
		assert.Equal(t, "Acme", *sub.Company)
		assert.Equal(t, "555", *sub.Phone)
		assert.Equal(t, "hi", *sub.Message)
	})
}
