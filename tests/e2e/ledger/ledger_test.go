//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/handler/dto/request"
	"adslot-ledger/internal/handler/dto/response"
	"adslot-ledger/tests/common/authtest"
	"adslot-ledger/tests/common/dbtest"
	"adslot-ledger/tests/common/httptest"
	"adslot-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	unitsURL    = "/api/units"
	spacesURL   = "/api/spaces"
	slotsURL    = "/api/slots"
	slotURL     = "/api/slots/%d"
	transferURL = "/api/slots/%d/transfer"
	payoutURL   = "/api/slots/%d/payout"
	escrowURL   = "/api/escrow"
	balanceURL  = "/api/accounts/%s/balance"

	advertiser = account.ID("advertiser.near")
	publisher  = account.ID("publisher.near")
	keeper     = account.ID("keeper.near")
)

var amountComparer = cmp.Comparer(func(a, b money.Amount) bool { return a.Equal(b) })

type LedgerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *LedgerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *LedgerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) token(acc account.ID) string {
	return s.jwt.GenerateToken(s.T(), acc)
}

func (s *LedgerSuite) makeUnit(t *testing.T) uint64 {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, unitsURL,
		request.CreateUnitRequest{Name: "Spring campaign", Content: "ipfs://campaign"}, s.token(advertiser))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var unit response.UnitResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &unit))
	return unit.ID
}

func (s *LedgerSuite) takeSlotRequest(unitID uint64, startOffset, endOffset time.Duration, attached string) request.TakeSlotRequest {
	now := s.Clock.Now()
	return request.TakeSlotRequest{
		SpaceID:            1,
		UnitID:             unitID,
		StartTime:          now.Add(startOffset).Unix(),
		EndTime:            now.Add(endOffset).Unix(),
		PublisherAccountID: publisher.String(),
		AttachedAmount:     &attached,
	}
}

// =============================================================================
// TestSlotLifecycle - booking, escrow and settlement through the API
// =============================================================================

func (s *LedgerSuite) TestSlotLifecycle() {
	s.Run("Normal case: booked funds are escrowed and paid out after the window", func() {
		t := s.T()
		unitID := s.makeUnit(t)

		req := s.takeSlotRequest(unitID, 10*time.Second, 15*time.Second, "100")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, req, s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var booked response.SlotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booked))

		expected := &response.SlotResponse{
			ID:         1,
			SpaceID:    1,
			UnitID:     unitID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Publisher:  publisher.String(),
			Advertiser: advertiser.String(),
			Price:      money.FromInt(100),
			Status:     "Booked",
		}
		opts := []cmp.Option{
			amountComparer,
			cmpopts.IgnoreFields(response.SlotResponse{}, "BookedAt"),
		}
		if diff := cmp.Diff(expected, &booked, opts...); diff != "" {
			t.Errorf("Slot response mismatch (-want +got):\n%s", diff)
		}

		ew := httptest.PerformRequest(t, s.Router, http.MethodGet, escrowURL, nil, "")
		var escrow response.EscrowResponse
		httptest.AssertSuccessResponse(t, ew, http.StatusOK, &escrow)
		require.Equal(t, "100", escrow.Held.String())
		require.Equal(t, 1, escrow.BookedSlots)

		// window still running
		s.Clock.Add(12 * time.Second)
		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, booked.ID), nil, s.token(keeper))
		httptest.AssertErrorCode(t, tw, http.StatusTooEarly, "TOO_EARLY")

		s.Clock.Add(3 * time.Second)
		tw = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, booked.ID), nil, s.token(keeper))
		var settled response.TransferResponse
		httptest.AssertSuccessResponse(t, tw, http.StatusOK, &settled)
		require.Equal(t, "Settled", settled.Slot.Status)
		require.Equal(t, keeper.String(), settled.Payout.TriggeredBy)

		tw = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, booked.ID), nil, s.token(keeper))
		httptest.AssertErrorCode(t, tw, http.StatusConflict, "ALREADY_SETTLED")

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(balanceURL, publisher), nil, "")
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(t, bw, http.StatusOK, &balance)
		require.Equal(t, "100", balance.Balance.String())

		ew = httptest.PerformRequest(t, s.Router, http.MethodGet, escrowURL, nil, "")
		httptest.AssertSuccessResponse(t, ew, http.StatusOK, &escrow)
		require.True(t, escrow.Held.IsZero())
		require.Equal(t, 0, escrow.BookedSlots)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(payoutURL, booked.ID), nil, "")
		var payout response.PayoutResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &payout)
		require.Equal(t, "100", payout.Net.String())

		// settled slots stay listed
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotURL, booked.ID), nil, "")
		var fetched response.SlotResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &fetched)
		require.Equal(t, "Settled", fetched.Status)
		require.NotNil(t, fetched.SettledAt)

		require.Equal(t, 0, dbtest.CountKeys(t, s.DB, "booked/"))
	})

	s.Run("Error case: overlapping booking is rejected and escrow is unchanged", func() {
		t := s.T()
		unitID := s.makeUnit(t)

		first := s.takeSlotRequest(unitID, 10*time.Second, 20*time.Second, "100")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, first, s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		overlapping := s.takeSlotRequest(unitID, 15*time.Second, 25*time.Second, "100")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, overlapping, s.token(advertiser))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CONFLICT")

		adjacent := s.takeSlotRequest(unitID, 20*time.Second, 30*time.Second, "100")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, adjacent, s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		ew := httptest.PerformRequest(t, s.Router, http.MethodGet, escrowURL, nil, "")
		var escrow response.EscrowResponse
		httptest.AssertSuccessResponse(t, ew, http.StatusOK, &escrow)
		require.Equal(t, "200", escrow.Held.String())
	})

	s.Run("Error case: failure ordering surfaces the first failing check", func() {
		t := s.T()
		unitID := s.makeUnit(t)

		testCases := []struct {
			name         string
			req          request.TakeSlotRequest
			expectStatus int
			expectCode   string
		}{
			{"unknown unit", s.takeSlotRequest(999, -time.Second, -2*time.Second, "0"), http.StatusNotFound, "NOT_FOUND"},
			{"inverted window", s.takeSlotRequest(unitID, 20*time.Second, 10*time.Second, "0"), http.StatusBadRequest, "VALIDATION_ERROR"},
			{"past window", s.takeSlotRequest(unitID, -20*time.Second, -10*time.Second, "0"), http.StatusBadRequest, "VALIDATION_ERROR"},
			{"no deposit", s.takeSlotRequest(unitID, 10*time.Second, 20*time.Second, "0"), http.StatusPaymentRequired, "PAYMENT_ERROR"},
		}
		for _, tc := range testCases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, tc.req, s.token(advertiser))
			httptest.AssertErrorCode(t, w, tc.expectStatus, tc.expectCode)
		}

		require.Equal(t, 0, dbtest.CountKeys(t, s.DB, "slot/"))
	})

	s.Run("Normal case: idempotent retry replays the booking", func() {
		t := s.T()
		unitID := s.makeUnit(t)
		key := uuid.New().String()
		req := s.takeSlotRequest(unitID, 10*time.Second, 20*time.Second, "100")

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, slotsURL, req,
			map[string]string{"Idempotency-Key": key}, s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, slotsURL, req,
			map[string]string{"Idempotency-Key": key}, s.token(advertiser))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Idempotent-Replayed": "true"})

		other := s.takeSlotRequest(unitID, 30*time.Second, 40*time.Second, "100")
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, slotsURL, other,
			map[string]string{"Idempotency-Key": key}, s.token(advertiser))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CONFLICT")

		require.Equal(t, 1, dbtest.CountKeys(t, s.DB, "slot/"))
	})

	s.Run("Normal case: concurrent transfers pay out exactly once", func() {
		t := s.T()
		unitID := s.makeUnit(t)
		req := s.takeSlotRequest(unitID, 10*time.Second, 15*time.Second, "100")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, req, s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		s.Clock.Add(20 * time.Second)
		token := s.token(keeper)

		const workers = 6
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, 1), nil, token)
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		ok := 0
		for _, code := range codes {
			if code == http.StatusOK {
				ok++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, 1, ok)

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(balanceURL, publisher), nil, "")
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(t, bw, http.StatusOK, &balance)
		require.Equal(t, "100", balance.Balance.String())
	})
}

// =============================================================================
// TestRegistry - units and spaces
// =============================================================================

func (s *LedgerSuite) TestRegistry() {
	s.Run("Normal case: registered space enforces owner and price", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spacesURL,
			request.CreateSpaceRequest{ID: 1, Name: "Homepage banner", Price: "150"}, s.token(publisher))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, spacesURL,
			request.CreateSpaceRequest{ID: 1, Name: "Again", Price: "1"}, s.token(publisher))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CONFLICT")

		unitID := s.makeUnit(t)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL,
			s.takeSlotRequest(unitID, 10*time.Second, 20*time.Second, "100"), s.token(advertiser))
		httptest.AssertErrorCode(t, w, http.StatusPaymentRequired, "PAYMENT_ERROR")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL,
			s.takeSlotRequest(unitID, 10*time.Second, 20*time.Second, "150"), s.token(advertiser))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/spaces/1/slots", nil, "")
		var slots []response.SlotResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &slots)
		require.Len(t, slots, 1)
	})

	s.Run("Normal case: unit listing is keyed by id", func() {
		t := s.T()
		first := s.makeUnit(t)
		second := s.makeUnit(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, unitsURL, nil, "")
		var units map[string]response.UnitResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &units)
		require.Len(t, units, 2)
		require.Equal(t, first, units[fmt.Sprint(first)].ID)
		require.Equal(t, second, units[fmt.Sprint(second)].ID)
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, unitsURL,
			request.CreateUnitRequest{Name: "n", Content: "c"}, s.jwt.CreateExpiredToken(t, advertiser))
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}
