package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=150"`
	Password string `validate:"required,min=8"`
}

func validate(t *testing.T, req sampleReq) error {
	t.Helper()
	return validator.New().Struct(req)
}

func TestFieldErrors(t *testing.T) {
	t.Run("missing fields are keyed by lowercased name", func(t *testing.T) {
		err := validate(t, sampleReq{})
		require.Error(t, err)

		out := FieldErrors(err)

		assert.Equal(t, []string{"This field is required."}, out["email"])
		assert.Equal(t, []string{"This field is required."}, out["username"])
		assert.Equal(t, []string{"This field is required."}, out["password"])
	})

	t.Run("invalid email gets the email message", func(t *testing.T) {
		err := validate(t, sampleReq{Email: "nope", Username: "user", Password: "password123"})
		require.Error(t, err)

		out := FieldErrors(err)

		assert.Equal(t, []string{"Enter a valid email address."}, out["email"])
		assert.NotContains(t, out, "username", "valid fields should not appear")
	})

	t.Run("min violation names the threshold", func(t *testing.T) {
		err := validate(t, sampleReq{Email: "a@b.com", Username: "user", Password: "short"})
		require.Error(t, err)

		out := FieldErrors(err)

		assert.Equal(t, []string{"Ensure this field has at least 8 characters."}, out["password"])
	})

	t.Run("non-validator errors fall back to non_field_errors", func(t *testing.T) {
		out := FieldErrors(errors.New("unexpected EOF"))

		assert.Equal(t, map[string][]string{
			NonFieldErrors: {"Invalid request body."},
		}, out)
	})
}

func TestFieldError(t *testing.T) {
	out := FieldError("topic", `"Pesticides" is not a valid choice.`)

	assert.Equal(t, map[string][]string{
		"topic": {`"Pesticides" is not a valid choice.`},
	}, out)
}
