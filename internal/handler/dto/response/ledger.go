package response

import (
	"fmt"
	"time"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UnitResponse struct {
	ID        uint64  `json:"id"`
	Owner     string  `json:"owner"`
	Name      string  `json:"name"`
	Content   string  `json:"content"`
	NFTCID    *string `json:"nftCid,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}

type SpaceResponse struct {
	ID            uint64        `json:"id"`
	Owner         string        `json:"owner"`
	Name          string        `json:"name"`
	Price         money.Amount  `json:"price" swaggertype:"string"`
	ShowKind      *string       `json:"showKind,omitempty"`
	PublisherEarn *money.Amount `json:"publisherEarn,omitempty" swaggertype:"string"`
	CreatedAt     int64         `json:"createdAt"`
}

type SlotResponse struct {
	ID           uint64                `json:"id"`
	SpaceID      uint64                `json:"spaceId"`
	UnitID       uint64                `json:"unitId"`
	StartTime    int64                 `json:"startTime"`
	EndTime      int64                 `json:"endTime"`
	Publisher    string                `json:"publisherAccountId"`
	Advertiser   string                `json:"advertiserAccountId"`
	Price        money.Amount          `json:"price" swaggertype:"string"`
	Presentation *PresentationResponse `json:"presentation,omitempty" copier:"-"`
	Status       string                `json:"status"`
	BookedAt     int64                 `json:"bookedAt"`
	SettledAt    *int64                `json:"settledAt,omitempty"`
}

type PresentationResponse struct {
	SpaceName     string        `json:"spaceName"`
	ShowKind      *string       `json:"showKind,omitempty"`
	PublisherEarn *money.Amount `json:"publisherEarn,omitempty" swaggertype:"string"`
}

type PayoutResponse struct {
	ID          string       `json:"id"`
	SlotID      uint64       `json:"slotId"`
	Publisher   string       `json:"publisher"`
	Gross       money.Amount `json:"gross" swaggertype:"string"`
	Net         money.Amount `json:"net" swaggertype:"string"`
	Fee         money.Amount `json:"fee" swaggertype:"string"`
	FeeAccount  string       `json:"feeAccount,omitempty"`
	TriggeredBy string       `json:"triggeredBy"`
	SettledAt   int64        `json:"settledAt"`
}

type TransferResponse struct {
	Slot   *SlotResponse   `json:"slot"`
	Payout *PayoutResponse `json:"payout"`
}

type EscrowResponse struct {
	Held        money.Amount `json:"held" swaggertype:"string"`
	BookedSlots int          `json:"bookedSlots"`
}

type BalanceResponse struct {
	Account string       `json:"account"`
	Balance money.Amount `json:"balance" swaggertype:"string"`
}

var viewConverters = []copier.TypeConverter{
	{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			return src.(time.Time).Unix(), nil
		},
	},
	{
		SrcType: &time.Time{},
		DstType: (*int64)(nil),
		Fn: func(src any) (any, error) {
			t, _ := src.(*time.Time)
			if t == nil {
				return (*int64)(nil), nil
			}
			ts := t.Unix()
			return &ts, nil
		},
	},
}

// copyView fills dst from a query view by field name, turning timestamps
// into unix seconds. Both sides are declared in this module, so a failure is
// a programming error.
func copyView(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{Converters: viewConverters}); err != nil {
		panic(fmt.Sprintf("copy %T into %T: %v", src, dst, err))
	}
}

func FromUnitView(v *queries.UnitView) *UnitResponse {
	var r UnitResponse
	copyView(&r, v)
	return &r
}

func FromUnitMap(m map[uint64]*queries.UnitView) map[uint64]*UnitResponse {
	res := make(map[uint64]*UnitResponse, len(m))
	for id, v := range m {
		res[id] = FromUnitView(v)
	}
	return res
}

func FromSpaceView(v *queries.SpaceView) *SpaceResponse {
	var r SpaceResponse
	copyView(&r, v)
	return &r
}

func FromSpaceMap(m map[uint64]*queries.SpaceView) map[uint64]*SpaceResponse {
	res := make(map[uint64]*SpaceResponse, len(m))
	for id, v := range m {
		res[id] = FromSpaceView(v)
	}
	return res
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var r SlotResponse
	copyView(&r, v)
	if v.Presentation != nil {
		r.Presentation = &PresentationResponse{}
		copyView(r.Presentation, v.Presentation)
	}
	return &r
}

func FromSlotMap(m map[uint64]*queries.SlotView) map[uint64]*SlotResponse {
	res := make(map[uint64]*SlotResponse, len(m))
	for id, v := range m {
		res[id] = FromSlotView(v)
	}
	return res
}

func FromSlotList(items []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(items))
	for i, it := range items {
		res[i] = FromSlotView(it)
	}
	return res
}

func FromPayoutView(v *queries.PayoutView) *PayoutResponse {
	var r PayoutResponse
	copyView(&r, v)
	return &r
}

func FromTransfer(slotView *queries.SlotView, payout *queries.PayoutView) *TransferResponse {
	return &TransferResponse{
		Slot:   FromSlotView(slotView),
		Payout: FromPayoutView(payout),
	}
}

func FromEscrowView(v *queries.EscrowView) *EscrowResponse {
	var r EscrowResponse
	copyView(&r, v)
	return &r
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	var r BalanceResponse
	copyView(&r, v)
	return &r
}
