package request

type CreateUnitRequest struct {
	Name    string  `json:"name" binding:"required"`
	Content string  `json:"content" binding:"required"`
	NFTCID  *string `json:"nftCid,omitempty"`
}

type CreateSpaceRequest struct {
	ID            uint64  `json:"id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Price         string  `json:"price" binding:"required"`
	ShowKind      *string `json:"showKind,omitempty"`
	PublisherEarn *string `json:"publisherEarn,omitempty"`
}

// TakeSlotRequest books a window. Zero ids and times are passed through so the
// ledger reports them in its own check order.
type TakeSlotRequest struct {
	SpaceID            uint64  `json:"spaceId"`
	UnitID             uint64  `json:"unitId"`
	StartTime          int64   `json:"startTime"`
	EndTime            int64   `json:"endTime"`
	PublisherAccountID string  `json:"publisherAccountId"`
	AttachedAmount     *string `json:"attachedAmount,omitempty"`
}
