package api

import (
	"net/http"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
	reqdto "adslot-ledger/internal/handler/dto/request"
	resdto "adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SpaceHandler struct {
	cmds  commands.SpaceCommands
	q     queries.SpaceQueries
	clock clock.Clock
}

func NewSpaceHandler(cmds commands.SpaceCommands, q queries.SpaceQueries, clk clock.Clock) *SpaceHandler {
	return &SpaceHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Register ad space
// @Description Register an ad space with a minimum price. The caller becomes its owner.
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpaceRequest true "Create space request"
// @Success 201 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spaces [post]
func (h *SpaceHandler) Create(c *gin.Context) {
	acc, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	price, err := money.Parse(req.Price)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	var earn *money.Amount
	if req.PublisherEarn != nil {
		parsed, err := money.Parse(*req.PublisherEarn)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid publisher earn", nil)
			return
		}
		earn = &parsed
	}

	view, err := h.cmds.MakeSpace(c.Request.Context(), runtime.NewCall(h.clock, acc, money.Zero), commands.MakeSpaceInput{
		ID:            req.ID,
		Name:          req.Name,
		Price:         price,
		ShowKind:      req.ShowKind,
		PublisherEarn: earn,
	})
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSpaceView(view))
}

// @Summary Get ad space
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spaces/{id} [get]
func (h *SpaceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), space.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpaceView(view))
}

// @Summary List ad spaces
// @Tags spaces
// @Produce json
// @Success 200 {object} map[string]resdto.SpaceResponse
// @Router /spaces [get]
func (h *SpaceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpaceMap(views))
}

// @Summary List slots of a space
// @Description Slots booked on a space ordered by start time. Unknown spaces yield an empty list.
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /spaces/{id}/slots [get]
func (h *SpaceHandler) ListSlots(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	views, err := h.q.ListSlots(c.Request.Context(), space.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(views))
}
