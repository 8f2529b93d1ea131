// Package authservice talks to the sibling auth service that owns passwords and tokens.
package authservice

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fiufit-users/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UpstreamError is returned when the auth service answers with a non-200 status.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("auth service returned %d: %s", e.Status, e.Message)
}

// Config holds the auth service location.
type Config struct {
	Host    string
	Timeout time.Duration
}

// Client is an HTTP client for the auth service.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new auth service client. Host is "host:port" without scheme.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: "http://" + strings.TrimSuffix(cfg.Host, "/"),
		timeout: cfg.Timeout,
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type emailPassword struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials resolves the role and id behind an Authorization header value.
func (c *Client) Credentials(authorization string) (*models.Credentials, error) {
	a := fiber.Get(c.baseURL + "/auth/credentials").Set(fiber.HeaderAuthorization, authorization)
	body, err := c.do(a)
	if err != nil {
		return nil, err
	}
	var creds models.Credentials
	if err := decodeData(body, &creds); err != nil || creds.Role == "" {
		log.Printf("Malformed credentials response: %s", body)
		return nil, &UpstreamError{Status: fiber.StatusForbidden, Message: "Token format error"}
	}
	return &creds, nil
}

// Token asks the auth service for a token carrying role and id.
func (c *Client) Token(role string, id uint) (string, error) {
	query := url.Values{}
	query.Set("role", role)
	query.Set("id", strconv.FormatUint(uint64(id), 10))
	body, err := c.do(fiber.Get(c.baseURL + "/auth/token?" + query.Encode()))
	if err != nil {
		return "", err
	}
	var token string
	if err := decodeData(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return token, nil
}

// Register creates the password account for email.
func (c *Client) Register(email, password string) error {
	_, err := c.do(fiber.Post(c.baseURL + "/auth").JSON(emailPassword{Email: email, Password: password}))
	return err
}

// Login checks email and password against the auth service.
func (c *Client) Login(email, password string) error {
	_, err := c.do(fiber.Post(c.baseURL + "/auth/login").JSON(emailPassword{Email: email, Password: password}))
	return err
}

// TokenLogin forwards a login carrying a bearer token and returns the auth service body unchanged.
func (c *Client) TokenLogin(authorization string, req *models.LoginRequest) (json.RawMessage, error) {
	a := fiber.Post(c.baseURL+"/auth/tokenLogin").
		Set(fiber.HeaderAuthorization, authorization).
		JSON(emailPassword{Email: req.Email, Password: req.Password})
	body, err := c.do(a)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("auth service returned a non JSON login body")
	}
	return json.RawMessage(body), nil
}

// ValidateIDPToken checks a token issued by the external identity provider.
func (c *Client) ValidateIDPToken(authorization string) error {
	a := fiber.Post(c.baseURL+"/auth/validateIdpToken").Set(fiber.HeaderAuthorization, authorization)
	_, err := c.do(a)
	return err
}

func (c *Client) do(a *fiber.Agent) ([]byte, error) {
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("auth service request failed: %v", errs)
	}
	if code != fiber.StatusOK {
		return nil, upstreamError(code, body)
	}
	return body, nil
}

func decodeData(body []byte, v interface{}) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("missing data field")
	}
	return json.Unmarshal(env.Data, v)
}

func upstreamError(code int, body []byte) *UpstreamError {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &UpstreamError{Status: code, Message: env.Message}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = fiber.ErrBadGateway.Message
	}
	return &UpstreamError{Status: code, Message: msg}
}
