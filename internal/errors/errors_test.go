package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Conflict("Book already exists")

	assert.True(t, Is(err, &Error{Code: CodeConflict}))
	assert.False(t, Is(err, &Error{Code: CodeNotFound}))

	wrapped := fmt.Errorf("creating book: %w", err)
	assert.True(t, Is(wrapped, Conflict("Overlapping reading intervals")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          *Error
		expectedCode int
	}{
		{name: "not found", err: NotFound("Book not found"), expectedCode: http.StatusNotFound},
		{name: "conflict", err: Conflict("Overlapping reading intervals"), expectedCode: http.StatusConflict},
		{name: "validation", err: Validation("bad body"), expectedCode: http.StatusBadRequest},
		{name: "unauthorized", err: Unauthorized("Invalid credentials"), expectedCode: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("nope"), expectedCode: http.StatusForbidden},
		{name: "internal", err: Internal(errors.New("boom")), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.HTTPStatus())
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "internal server error: pq: connection refused", err.Error())
	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}
