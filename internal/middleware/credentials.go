package middleware

import (
	"log"

	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/gofiber/fiber/v2"
)

const credentialsKey = "credentials"

// ErrorResponder writes err as the response of c.
type ErrorResponder func(c *fiber.Ctx, err error) error

// Credentials resolves the caller of the request and caches it in the request locals.
// A missing Authorization header yields services.ErrNoToken.
func Credentials(c *fiber.Ctx, verifier services.CredentialVerifier) (*models.Credentials, error) {
	if creds, ok := c.Locals(credentialsKey).(*models.Credentials); ok {
		return creds, nil
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return nil, services.ErrNoToken
	}

	creds, err := verifier.Credentials(authHeader)
	if err != nil {
		log.Printf("Credentials check failed: %v", err)
		return nil, err
	}

	c.Locals(credentialsKey, creds)
	return creds, nil
}

// AuthRequired is a Fiber middleware that rejects requests whose caller cannot be resolved.
func AuthRequired(verifier services.CredentialVerifier, fail ErrorResponder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := Credentials(c, verifier); err != nil {
			return fail(c, err)
		}
		return c.Next()
	}
}

// AdminRequired is AuthRequired restricted to admins.
func AdminRequired(verifier services.CredentialVerifier, fail ErrorResponder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds, err := Credentials(c, verifier)
		if err != nil {
			return fail(c, err)
		}
		if !creds.IsAdmin() {
			return fail(c, services.ErrInvalidCredentials)
		}
		return c.Next()
	}
}
