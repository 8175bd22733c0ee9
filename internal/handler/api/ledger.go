package api

import (
	"net/http"

	"adslot-ledger/internal/domain/account"
	resdto "adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary Escrow balance
// @Description Funds currently held for booked slots
// @Tags ledger
// @Produce json
// @Success 200 {object} resdto.EscrowResponse
// @Router /escrow [get]
func (h *LedgerHandler) Escrow(c *gin.Context) {
	view, err := h.q.Escrow(c.Request.Context())
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEscrowView(view))
}

// @Summary Account balance
// @Description Funds paid out to an account by the ledger
// @Tags ledger
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts/{id}/balance [get]
func (h *LedgerHandler) Balance(c *gin.Context) {
	acc, err := account.NewID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid account id", nil)
		return
	}
	view, err := h.q.BalanceOf(c.Request.Context(), acc)
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
