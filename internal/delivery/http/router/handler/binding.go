package handler

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the registered validator.
// A malformed body answers 400; a well-formed body failing validation answers 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// parseIDParam reads a uuid path parameter; malformed ids are reported as notFound.
func parseIDParam(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
