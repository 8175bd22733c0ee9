//go:build unit || e2e

package builder

import (
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
	reqdto "adslot-ledger/internal/handler/dto/request"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"
)

type UnitBuilder struct {
	ID      uint64
	Owner   string
	Name    string
	Content string
	NFTCID  *string
	Now     time.Time
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:      1,
		Owner:   "advertiser.near",
		Name:    "Spring campaign",
		Content: "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		Now:     BaseTime,
	}
}

func (b *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(b)
	return b
}

func (b *UnitBuilder) BuildDomain() (*unit.Unit, error) {
	return unit.NewUnit(unit.ID(b.ID), account.ID(b.Owner), b.Name, b.Content, b.NFTCID, b.Now)
}

func (b *UnitBuilder) BuildInput() commands.MakeUnitInput {
	return commands.MakeUnitInput{Name: b.Name, Content: b.Content, NFTCID: b.NFTCID}
}

func (b *UnitBuilder) BuildRequestDTO() reqdto.CreateUnitRequest {
	return reqdto.CreateUnitRequest{Name: b.Name, Content: b.Content, NFTCID: b.NFTCID}
}

func (b *UnitBuilder) BuildViewQuery() *queries.UnitView {
	return &queries.UnitView{
		ID:        b.ID,
		Owner:     b.Owner,
		Name:      b.Name,
		Content:   b.Content,
		NFTCID:    b.NFTCID,
		CreatedAt: b.Now,
	}
}

type SpaceBuilder struct {
	ID            uint64
	Owner         string
	Name          string
	Price         int64
	ShowKind      *string
	PublisherEarn *int64
	Now           time.Time
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		ID:    1,
		Owner: "publisher.near",
		Name:  "Homepage banner",
		Price: 100,
		Now:   BaseTime,
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(b)
	return b
}

func (b *SpaceBuilder) BuildDomain() (*space.Space, error) {
	return space.NewSpace(space.ID(b.ID), account.ID(b.Owner), b.Name, money.FromInt(b.Price), b.ShowKind, b.earn(), b.Now)
}

func (b *SpaceBuilder) BuildInput() commands.MakeSpaceInput {
	return commands.MakeSpaceInput{ID: b.ID, Name: b.Name, Price: money.FromInt(b.Price), ShowKind: b.ShowKind, PublisherEarn: b.earn()}
}

func (b *SpaceBuilder) earn() *money.Amount {
	if b.PublisherEarn == nil {
		return nil
	}
	a := money.FromInt(*b.PublisherEarn)
	return &a
}

func (b *SpaceBuilder) BuildRequestDTO() reqdto.CreateSpaceRequest {
	req := reqdto.CreateSpaceRequest{ID: b.ID, Name: b.Name, Price: money.FromInt(b.Price).String(), ShowKind: b.ShowKind}
	if earn := b.earn(); earn != nil {
		s := earn.String()
		req.PublisherEarn = &s
	}
	return req
}

func (b *SpaceBuilder) BuildViewQuery() *queries.SpaceView {
	return &queries.SpaceView{
		ID:            b.ID,
		Owner:         b.Owner,
		Name:          b.Name,
		Price:         money.FromInt(b.Price),
		ShowKind:      b.ShowKind,
		PublisherEarn: b.earn(),
		CreatedAt:     b.Now,
	}
}
