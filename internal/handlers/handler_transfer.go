package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/dto"
	"github.com/openbanklab/bankapi/internal/middleware"
)

// transferHandler handles HTTP requests for money movements between accounts.
type transferHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ls portssvc.LedgerSvcFacade) *transferHandler {
	return &transferHandler{ledgerService: ls}
}

// registerTransferRoutes registers the transfer and divert routes.
func registerTransferRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransferHandler(ledgerService)

	rg.POST("/transfer", h.transfer)
	rg.POST("/divert", h.divert)
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Moves a positive amount from one account to another and returns both derived balances
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sender or recipient not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /transfer [post]
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), req.From, req.To, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}

// divert godoc
// @Summary Reverse a prior transfer
// @Description Issues an equal-and-opposite transfer for an existing transfer transaction
// @Tags transfers
// @Accept json
// @Produce json
// @Param divert body dto.DivertRequest true "Transaction to reverse"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Not a transfer transaction"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /divert [post]
func (h *transferHandler) divert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DivertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for divert request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.ledgerService.Divert(c.Request.Context(), req.ID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to divert transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}
