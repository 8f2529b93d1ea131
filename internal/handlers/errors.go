package handlers

import (
	"errors"
	"fmt"
	"log"

	"fiufit-users/internal/services"
	"fiufit-users/pkg/authservice"
	"fiufit-users/pkg/payments"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// bodyError is a request body that could not be parsed.
type bodyError struct {
	err error
}

func (e *bodyError) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.err)
}

// validationError lists the fields of a request that broke their validation tags.
type validationError struct {
	fields map[string]string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.fields)
}

// paramError is a path or query parameter with the wrong type.
type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("Invalid %s", e.name)
}

var statusByError = []struct {
	err    error
	status int
}{
	{services.ErrUserNotFound, fiber.StatusNotFound},
	{services.ErrIDPUserNotFound, fiber.StatusNotFound},
	{services.ErrAdminNotFound, fiber.StatusNotFound},
	{services.ErrWalletNotFound, fiber.StatusNotFound},
	{services.ErrEmailTaken, fiber.StatusBadRequest},
	{services.ErrUsernameTaken, fiber.StatusBadRequest},
	{services.ErrAdminTaken, fiber.StatusBadRequest},
	{services.ErrSelfFollow, fiber.StatusBadRequest},
	{services.ErrInvalidReceiver, fiber.StatusBadRequest},
	{services.ErrExclusiveFilters, fiber.StatusNotAcceptable},
	{services.ErrIncompleteCoordinates, fiber.StatusNotAcceptable},
	{services.ErrNoToken, fiber.StatusForbidden},
	{services.ErrInvalidCredentials, fiber.StatusForbidden},
	{services.ErrUserBlocked, fiber.StatusUnauthorized},
}

// respondError writes err with the status its kind maps to.
func respondError(c *fiber.Ctx, err error) error {
	var (
		bodyErr       *bodyError
		validationErr *validationError
		paramErr      *paramError
		authErr       *authservice.UpstreamError
		paymentsErr   *payments.UpstreamError
	)
	switch {
	case errors.As(err, &bodyErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   bodyErr.err.Error(),
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.fields,
		})
	case errors.As(err, &paramErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": paramErr.Error(),
		})
	case errors.As(err, &authErr):
		log.Printf("Auth service error: %v", err)
		return c.Status(authErr.Status).JSON(fiber.Map{
			"message": authErr.Message,
		})
	case errors.As(err, &paymentsErr):
		log.Printf("Payments service error: %v", err)
		return c.Status(paymentsErr.Status).JSON(fiber.Map{
			"message": paymentsErr.Message,
		})
	}

	for _, known := range statusByError {
		if errors.Is(err, known.err) {
			return c.Status(known.status).JSON(fiber.Map{
				"message": known.err.Error(),
			})
		}
	}

	log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// bindBody parses the request body into out and validates it.
func bindBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return &bodyError{err: err}
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &validationError{fields: errorMessages}
	}
	return nil
}

// paramID reads a positive numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, &paramError{name: name}
	}
	return uint(id), nil
}
