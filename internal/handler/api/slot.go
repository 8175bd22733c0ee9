package api

import (
	"errors"
	"net/http"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/slot"
	reqdto "adslot-ledger/internal/handler/dto/request"
	resdto "adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/pkg/patch"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

var errInvalidIdempotencyKey = errors.New("invalid idempotency key format")

type SlotHandler struct {
	slots      commands.SlotCommands
	settlement commands.SettlementCommands
	q          queries.SlotQueries
	ledger     queries.LedgerQueries
	clock      clock.Clock
}

func NewSlotHandler(
	slots commands.SlotCommands,
	settlement commands.SettlementCommands,
	q queries.SlotQueries,
	ledger queries.LedgerQueries,
	clk clock.Clock,
) *SlotHandler {
	return &SlotHandler{slots: slots, settlement: settlement, q: q, ledger: ledger, clock: clk}
}

// @Summary Take slot
// @Description Book a time window on an ad space. attachedAmount is moved into escrow on success.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for safe retries"
// @Param request body reqdto.TakeSlotRequest true "Take slot request"
// @Success 201 {object} resdto.SlotResponse
// @Success 200 {object} resdto.SlotResponse "Replayed response"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots [post]
func (h *SlotHandler) Take(c *gin.Context) {
	acc, ok := caller(c)
	if !ok {
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.TakeSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	attached, err := money.Parse(patch.Coalesce(req.AttachedAmount, "0"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid attachedAmount", nil)
		return
	}

	result, err := h.slots.TakeSlot(c.Request.Context(), runtime.NewCall(h.clock, acc, attached), commands.TakeSlotInput{
		SpaceID:            req.SpaceID,
		UnitID:             req.UnitID,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		PublisherAccountID: req.PublisherAccountID,
		IdempotencyKey:     idempotencyKey,
	})
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}

	if result.IsReplayed {
		c.Header(headerReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromSlotView(result.Slot))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlotView(result.Slot))
}

// @Summary Get slot
// @Tags slots
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), slot.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List slots
// @Description Every slot ever booked keyed by id, settled ones included
// @Tags slots
// @Produce json
// @Success 200 {object} map[string]resdto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotMap(views))
}

// @Summary Transfer slot funds
// @Description Pay the escrowed price of an elapsed slot out to its publisher. Any authenticated account may trigger it.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} resdto.TransferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Already settled"
// @Failure 425 {object} httperr.Response "Window not over yet"
// @Router /slots/{id}/transfer [post]
func (h *SlotHandler) Transfer(c *gin.Context) {
	acc, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := h.settlement.TransferFunds(c.Request.Context(), runtime.NewCall(h.clock, acc, money.Zero), slot.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransfer(res.Slot, res.Payout))
}

// @Summary Get slot payout
// @Description Settlement receipt of a slot
// @Tags slots
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/{id}/payout [get]
func (h *SlotHandler) Payout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.ledger.PayoutBySlot(c.Request.Context(), slot.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayoutView(view))
}

// getIdempotencyKey returns nil when the header is absent. Retries without a
// key are treated as new bookings.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(headerIdempotencyKey)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}
