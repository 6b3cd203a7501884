package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED", NewUnauthorizedError("nope", true).Code)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("nope", false).Status)
	assert.Equal(t, "NOT_FOUND", NewNotFoundError("user not found", true, nil).Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestBadRequestCustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	fields := []FieldError{{Field: "email", Error: "is required"}}

	err := NewBadRequestError("A user with this Email already exists", true, &code, fields, nil)

	assert.Equal(t, code, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, fields, err.Errors)
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("registering user: %w", NewNotFoundError("user not found", true, nil))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.Equal(t, "user not found", httpErr.Error())
}

func TestWithMessageCopies(t *testing.T) {
	base := NewUnauthorizedError("Unauthorized", false)
	custom := base.WithMessage("invalid email or password")

	assert.Equal(t, "Unauthorized", base.Message)
	assert.Equal(t, "invalid email or password", custom.Message)
	assert.Equal(t, base.Code, custom.Code)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}
