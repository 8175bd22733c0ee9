package api

import (
	"net/http"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/unit"
	reqdto "adslot-ledger/internal/handler/dto/request"
	resdto "adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	cmds  commands.UnitCommands
	q     queries.UnitQueries
	clock clock.Clock
}

func NewUnitHandler(cmds commands.UnitCommands, q queries.UnitQueries, clk clock.Clock) *UnitHandler {
	return &UnitHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Register ad unit
// @Description Register a new ad unit owned by the caller
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUnitRequest true "Create unit request"
// @Success 201 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	acc, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.MakeUnit(c.Request.Context(), runtime.NewCall(h.clock, acc, money.Zero), commands.MakeUnitInput{
		Name:    req.Name,
		Content: req.Content,
		NFTCID:  req.NFTCID,
	})
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUnitView(view))
}

// @Summary Get ad unit
// @Description Get an ad unit by ID
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), unit.ID(id))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitView(view))
}

// @Summary List ad units
// @Description All registered ad units keyed by id
// @Tags units
// @Produce json
// @Success 200 {object} map[string]resdto.UnitResponse
// @Router /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitMap(views))
}
