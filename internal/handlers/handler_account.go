package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/dto"
	"github.com/openbanklab/bankapi/internal/middleware"
)

// identityHeader carries "name;surname" for single-account reads.
const identityHeader = "X-Sistema-Bancario"

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		ledgerService:  ls,
	}
}

// registerAccountRoutes registers all account-related routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(accountService, ledgerService)

	account := rg.Group("/account")
	{
		account.GET("", h.listAccounts)
		account.POST("", h.createAccount)
		account.DELETE("", h.deleteAccount) // id passed as query parameter
		account.GET("/:accountID", h.getAccount)
		account.HEAD("/:accountID", h.headAccount)
		account.POST("/:accountID", h.deposit)
		account.PUT("/:accountID", h.updateAccount)
		account.PATCH("/:accountID", h.patchAccount)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Router /account [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account and returns its generated id
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account holder details"
// @Success 201 {object} dto.CreateAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /account [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAccountResponse{ID: account.AccountID})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account; its transactions remain as an audit trail
// @Tags accounts
// @Param id query string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID := c.Query("id")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'id' is required"})
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves an account with its derived balance and transactions. The "detailed" query flag switches the transaction listing from ids to full records.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param detailed query string false "Return full transaction records"
// @Success 200 {object} dto.AccountDetailResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	detail := domain.DetailSummary
	if _, detailed := c.GetQuery("detailed"); detailed {
		detail = domain.DetailFull
	}

	statement, err := h.accountService.GetAccountStatement(c.Request.Context(), accountID, detail)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.Header(identityHeader, statement.Account.Name+";"+statement.Account.Surname)
	c.JSON(http.StatusOK, dto.ToAccountDetailResponse(statement, detail))
}

// headAccount godoc
// @Summary Account identity header
// @Description Returns only the identity header for an account
// @Tags accounts
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/{accountID} [head]
func (h *accountHandler) headAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.Header(identityHeader, account.Name+";"+account.Surname)
	c.Status(http.StatusNoContent)
}

// deposit godoc
// @Summary Deposit or withdraw
// @Description Records a deposit for a positive amount or a withdrawal for a negative one
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param movement body dto.DepositRequest true "Signed amount"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /account/{accountID} [post]
func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.ledgerService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(result))
}

// updateAccount godoc
// @Summary Update an account
// @Description Replaces the account holder's name and surname
// @Tags accounts
// @Accept json
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "New details"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req); err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	c.Status(http.StatusNoContent)
}

// patchAccount godoc
// @Summary Partially update an account
// @Description Updates exactly one of name or surname
// @Tags accounts
// @Accept json
// @Param accountID path string true "Account ID"
// @Param account body dto.PatchAccountRequest true "Field to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/{accountID} [patch]
func (h *accountHandler) patchAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.PatchAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for patch account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.PatchAccount(c.Request.Context(), accountID, req); err != nil {
		respondServiceError(c, logger, err, "Failed to patch account")
		return
	}

	c.Status(http.StatusNoContent)
}
