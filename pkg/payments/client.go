// Package payments talks to the payments service that holds wallet funds.
package payments

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UpstreamError is returned when the payments service answers with a non-200 status.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payments service returned %d: %s", e.Status, e.Message)
}

// Config holds the payments service location.
type Config struct {
	Host    string
	Timeout time.Duration
}

// NewWallet is a freshly issued wallet.
type NewWallet struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// Transfer moves amount from the wallet owning SenderKey to ReceiverAddress.
type Transfer struct {
	SenderKey       string  `json:"senderKey"`
	ReceiverAddress string  `json:"receiverAddress"`
	Amount          float64 `json:"amount"`
}

type balance struct {
	Balance float64 `json:"balance"`
}

type amount struct {
	Amount float64 `json:"amount"`
}

// Client is an HTTP client for the payments service.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new payments client. Host is "host:port" without scheme.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: "http://" + strings.TrimSuffix(cfg.Host, "/"),
		timeout: cfg.Timeout,
	}
}

// CreateWallet asks for a new wallet.
func (c *Client) CreateWallet() (*NewWallet, error) {
	body, err := c.do(fiber.Post(c.baseURL + "/wallet"))
	if err != nil {
		return nil, err
	}
	var w NewWallet
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("failed to decode wallet: %w", err)
	}
	return &w, nil
}

// Balance returns the funds held at address.
func (c *Client) Balance(address string) (float64, error) {
	body, err := c.do(fiber.Get(c.walletURL(address)))
	if err != nil {
		return 0, err
	}
	var b balance
	if err := json.Unmarshal(body, &b); err != nil {
		return 0, fmt.Errorf("failed to decode balance: %w", err)
	}
	return b.Balance, nil
}

// Deposit transfers funds between two platform wallets.
func (c *Client) Deposit(t Transfer) error {
	_, err := c.do(fiber.Post(c.baseURL + "/deposit").JSON(t))
	return err
}

// Extraction transfers funds from a platform wallet to any address.
func (c *Client) Extraction(t Transfer) error {
	_, err := c.do(fiber.Post(c.baseURL + "/extraction").JSON(t))
	return err
}

// AddBalance credits address from the platform contract.
func (c *Client) AddBalance(address string, value float64) error {
	_, err := c.do(fiber.Post(c.walletURL(address)).JSON(amount{Amount: value}))
	return err
}

func (c *Client) walletURL(address string) string {
	return c.baseURL + "/wallet/" + url.PathEscape(address) + "/balance"
}

func (c *Client) do(a *fiber.Agent) ([]byte, error) {
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("payments request failed: %v", errs)
	}
	if code != fiber.StatusOK {
		var e struct {
			Message string `json:"message"`
		}
		msg := strings.TrimSpace(string(body))
		if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
			msg = e.Message
		}
		return nil, &UpstreamError{Status: code, Message: msg}
	}
	return body, nil
}
