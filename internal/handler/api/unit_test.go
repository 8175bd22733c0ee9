//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/handler/api"
	resdto "adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/internal/handler/middleware"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/tests/common/builder"
	"adslot-ledger/tests/common/httptest"
	"adslot-ledger/tests/common/testutil"
	commandsmock "adslot-ledger/tests/mock/commands"
	queriesmock "adslot-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockUnitCmds  *commandsmock.MockUnitCommands
	mockUnitQ     *queriesmock.MockUnitQueries
	mockSpaceCmds *commandsmock.MockSpaceCommands
	mockSpaceQ    *queriesmock.MockSpaceQueries
}

func (s *RegistryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUnitCmds = commandsmock.NewMockUnitCommands(s.mockCtrl)
	s.mockUnitQ = queriesmock.NewMockUnitQueries(s.mockCtrl)
	s.mockSpaceCmds = commandsmock.NewMockSpaceCommands(s.mockCtrl)
	s.mockSpaceQ = queriesmock.NewMockSpaceQueries(s.mockCtrl)

	clk := clock.NewMockClock(builder.BaseTime)
	units := api.NewUnitHandler(s.mockUnitCmds, s.mockUnitQ, clk)
	spaces := api.NewSpaceHandler(s.mockSpaceCmds, s.mockSpaceQ, clk)

	s.router.Use(middleware.ErrorHandler())
	s.router.POST("/units", fakeAuth, units.Create)
	s.router.GET("/units", units.List)
	s.router.GET("/units/:id", units.Get)
	s.router.POST("/spaces", fakeAuth, spaces.Create)
	s.router.GET("/spaces", spaces.List)
	s.router.GET("/spaces/:id", spaces.Get)
	s.router.GET("/spaces/:id/slots", spaces.ListSlots)
}

func (s *RegistryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistryHandlerTestSuite))
}

func (s *RegistryHandlerTestSuite) TestCreateUnit() {
	b := builder.NewUnitBuilder()
	reqBody := b.BuildRequestDTO()
	returnView := b.BuildViewQuery()

	s.Run("success: returns 201 Created", func() {
		s.mockUnitCmds.EXPECT().MakeUnit(gomock.Any(), gomock.Any(), b.BuildInput()).
			DoAndReturn(func(_ any, call runtime.Call, _ commands.MakeUnitInput) (*queries.UnitView, error) {
				s.Equal(testCaller, call.Caller)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", reqBody, "bearer-token")

		var body resdto.UnitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(uint64(1), body.ID)
		s.Equal(returnView.Content, body.Content)
		s.Equal(builder.BaseTime.Unix(), body.CreatedAt)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"name", "content"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", requestMap, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
			})
		}
	})

	s.Run("error: domain validation surfaces as 400", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", strings.Repeat("n", 101)))
		s.mockUnitCmds.EXPECT().MakeUnit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(unit.ErrNameTooLong, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "longer than 100")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *RegistryHandlerTestSuite) TestGetUnit() {
	s.Run("success", func() {
		s.mockUnitQ.EXPECT().GetByID(gomock.Any(), unit.ID(1)).
			Return(builder.NewUnitBuilder().BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/1", nil, "")
		var body resdto.UnitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("advertiser.near", body.Owner)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockUnitQ.EXPECT().GetByID(gomock.Any(), unit.ID(2)).
			Return(nil, errs.Mark(unit.ErrNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units/2", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *RegistryHandlerTestSuite) TestListUnits() {
	s.mockUnitQ.EXPECT().List(gomock.Any()).Return(map[uint64]*queries.UnitView{}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/units", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{}`, rec.Body.String())
}

func (s *RegistryHandlerTestSuite) TestCreateSpace() {
	b := builder.NewSpaceBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: price is parsed from its string form", func() {
		s.mockSpaceCmds.EXPECT().MakeSpace(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ runtime.Call, in commands.MakeSpaceInput) (*queries.SpaceView, error) {
				s.Equal(uint64(1), in.ID)
				s.True(in.Price.Equal(money.FromInt(100)))
				return b.BuildViewQuery(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spaces", reqBody, "bearer-token")
		var body resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("100", body.Price.String())
	})

	s.Run("error: 400 on malformed price", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("price", "1e-3"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spaces", requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid price")
	})

	s.Run("success: publisher earn is passed through", func() {
		earn := int64(90)
		withEarn := builder.NewSpaceBuilder().With(func(b *builder.SpaceBuilder) { b.PublisherEarn = &earn })
		s.mockSpaceCmds.EXPECT().MakeSpace(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ runtime.Call, in commands.MakeSpaceInput) (*queries.SpaceView, error) {
				s.Require().NotNil(in.PublisherEarn)
				s.True(in.PublisherEarn.Equal(money.FromInt(90)))
				return withEarn.BuildViewQuery(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spaces", withEarn.BuildRequestDTO(), "bearer-token")
		var body resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.PublisherEarn)
		s.Equal("90", body.PublisherEarn.String())
	})

	s.Run("error: 400 on malformed publisher earn", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("publisherEarn", "-5"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spaces", requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid publisher earn")
	})

	s.Run("error: 409 on duplicate id", func() {
		s.mockSpaceCmds.EXPECT().MakeSpace(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(space.ErrAlreadyExists, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spaces", reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONFLICT")
	})
}

func (s *RegistryHandlerTestSuite) TestListSpaceSlots() {
	s.Run("success: returns an array in query order", func() {
		first := builder.NewSlotBuilder().Window(10, 15).BuildViewQuery()
		second := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.ID = 2 }).Window(20, 25).BuildViewQuery()
		s.mockSpaceQ.EXPECT().ListSlots(gomock.Any(), space.ID(1)).
			Return([]*queries.SlotView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/1/slots", nil, "")
		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(uint64(1), body[0].ID)
		s.Equal(uint64(2), body[1].ID)
	})

	s.Run("success: unknown space yields empty array", func() {
		s.mockSpaceQ.EXPECT().ListSlots(gomock.Any(), space.ID(9)).
			Return([]*queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/9/slots", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
