package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gmumarket/pkg/errors"
)

func TestHTTPStatusSynthesizesMessage(t *testing.T) {
	err := errors.HTTPStatus(404, "")
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, 404, err.Status)

	err = errors.HTTPStatus(400, "name is required")
	assert.Contains(t, err.Error(), "name is required")
}

func TestIsMatchesCode(t *testing.T) {
	err := errors.Network(fmt.Errorf("connection refused"))
	assert.True(t, errors.Is(err, "NETWORK_ERROR"))
	assert.False(t, errors.Is(err, "HTTP_ERROR"))
	assert.False(t, errors.Is(fmt.Errorf("plain"), "NETWORK_ERROR"))
}

func TestIsMatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading dashboard: %w", errors.HTTPStatus(401, "no credentials"))
	assert.True(t, errors.Is(wrapped, "HTTP_ERROR"))
	assert.Equal(t, 401, errors.StatusOf(wrapped))
}

func TestStatusOfWithoutStatus(t *testing.T) {
	assert.Equal(t, 0, errors.StatusOf(errors.Parse(fmt.Errorf("bad json"))))
	assert.Equal(t, 0, errors.StatusOf(fmt.Errorf("plain")))
}
