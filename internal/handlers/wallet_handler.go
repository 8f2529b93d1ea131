package handlers

import (
	"fiufit-users/internal/middleware"
	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WalletHandler handles HTTP requests for wallets and transfers.
type WalletHandler struct {
	wallets  *services.WalletService
	users    *services.UserService
	verifier services.CredentialVerifier
	validate *validator.Validate
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets *services.WalletService, users *services.UserService, verifier services.CredentialVerifier) *WalletHandler {
	return &WalletHandler{
		wallets:  wallets,
		users:    users,
		verifier: verifier,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wallet routes. The static paths must be registered before
// the user routes.
func (h *WalletHandler) RegisterRoutes(router fiber.Router) {
	authRequired := middleware.AuthRequired(h.verifier, respondError)
	adminRequired := middleware.AdminRequired(h.verifier, respondError)

	router.Get("/users/transactions", adminRequired, h.HandleTransactions)
	router.Post("/users/deposit", authRequired, h.HandleDeposit)
	router.Post("/users/extraction", authRequired, h.HandleExtraction)

	walletRoutes := router.Group("/users/:id/wallet")
	walletRoutes.Get("/", h.HandleGetWallet)
	walletRoutes.Get("/balance", h.HandleBalance)
	walletRoutes.Patch("/balance", h.HandleAddBalance)
}

// HandleGetWallet returns the wallet with its private key. Only its owner may read it.
func (h *WalletHandler) HandleGetWallet(c *fiber.Ctx) error {
	user, creds, err := h.caller(c)
	if err != nil {
		return respondError(c, err)
	}
	if !creds.Owns(user.ID) {
		return respondError(c, services.ErrInvalidCredentials)
	}

	wallet, err := h.wallets.Get(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wallet)
}

// HandleBalance returns the balance of a wallet to its owner or to an admin.
func (h *WalletHandler) HandleBalance(c *fiber.Ctx) error {
	user, creds, err := h.caller(c)
	if err != nil {
		return respondError(c, err)
	}
	if !creds.Owns(user.ID) && !creds.IsAdmin() {
		return respondError(c, services.ErrInvalidCredentials)
	}

	balance, err := h.wallets.Balance(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance})
}

// HandleAddBalance credits a bonus to a wallet. Admin only.
func (h *WalletHandler) HandleAddBalance(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := h.users.Get(id); err != nil {
		return respondError(c, err)
	}
	var bonus models.BalanceBonus
	if err := bindBody(c, h.validate, &bonus); err != nil {
		return respondError(c, err)
	}
	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return respondError(c, err)
	}
	if !creds.IsAdmin() {
		return respondError(c, services.ErrInvalidCredentials)
	}

	if err := h.wallets.AddBalance(id, bonus.Amount); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Balance added", "amount": bonus.Amount})
}

// HandleDeposit transfers funds from the caller to a trainer.
func (h *WalletHandler) HandleDeposit(c *fiber.Ctx) error {
	var req models.DepositRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	if err := h.sender(c, req.SenderID); err != nil {
		return respondError(c, err)
	}

	if err := h.wallets.Deposit(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deposit successful", "amount": req.Amount})
}

// HandleExtraction transfers funds from the caller to an external address.
func (h *WalletHandler) HandleExtraction(c *fiber.Ctx) error {
	var req models.ExtractionRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	if err := h.sender(c, req.SenderID); err != nil {
		return respondError(c, err)
	}

	if err := h.wallets.Extraction(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Extraction successful", "amount": req.Amount})
}

// HandleTransactions lists the transaction log. Admin only.
func (h *WalletHandler) HandleTransactions(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", services.DefaultLimit)

	page, err := h.wallets.Transactions(offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// caller loads the user in :id and then the credentials of the request.
func (h *WalletHandler) caller(c *fiber.Ctx) (*models.User, *models.Credentials, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, nil, err
	}
	user, err := h.users.Get(id)
	if err != nil {
		return nil, nil, err
	}
	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return nil, nil, err
	}
	return user, creds, nil
}

// sender checks that the authenticated caller is the user moving the funds.
func (h *WalletHandler) sender(c *fiber.Ctx, senderID uint) error {
	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return err
	}
	if !creds.Owns(senderID) {
		return services.ErrInvalidCredentials
	}
	return nil
}
