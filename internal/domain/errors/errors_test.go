package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: http.StatusBadRequest, want: "fail"},
		{code: http.StatusPaymentRequired, want: "fail"},
		{code: http.StatusForbidden, want: "fail"},
		{code: http.StatusNotFound, want: "fail"},
		{code: http.StatusUnprocessableEntity, want: "fail"},
		{code: http.StatusInternalServerError, want: "error"},
		{code: http.StatusBadGateway, want: "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.code))
		})
	}
}

func TestWrappedBaseErrorKeepsAppErrorSemantics(t *testing.T) {
	err := errors.Wrap(ErrEmptyCart, "begin checkout")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "EMPTY_CART", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestWithDetailsReturnsCopy(t *testing.T) {
	detailed := ErrImageRequired.WithDetails("field imageUrl")

	assert.Equal(t, "field imageUrl", detailed.Details())
	assert.Empty(t, ErrImageRequired.Details())
	assert.Equal(t, http.StatusUnprocessableEntity, detailed.HTTPCode())
}
