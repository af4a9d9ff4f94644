package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// StockTakeModel is the persistence model for stock takes.
type StockTakeModel struct {
	TenantModel
	Reference   string                    `gorm:"type:varchar(100);not null;uniqueIndex:idx_stocktake_tenant_ref,priority:2"`
	Status      inventory.StockTakeStatus `gorm:"type:varchar(20);not null;index"`
	StartedAt   time.Time                 `gorm:"not null"`
	CompletedAt *time.Time
	Lines       []StockTakeLineModel `gorm:"foreignKey:StockTakeID;references:ID"`
}

// TableName returns the table name for GORM
func (StockTakeModel) TableName() string {
	return "stock_takes"
}

// StockTakeLineModel is the persistence model for stock take lines.
type StockTakeLineModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	StockTakeID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductName      string           `gorm:"type:varchar(200);not null"`
	ExpectedQuantity decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CountedQuantity  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	UnitCost         decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (StockTakeLineModel) TableName() string {
	return "stock_take_lines"
}

// ToDomain converts the persistence model to a domain StockTake
func (m *StockTakeModel) ToDomain() *inventory.StockTake {
	lines := make([]inventory.StockTakeLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = inventory.StockTakeLine{
			ID:               m.Lines[i].ID,
			StockTakeID:      m.Lines[i].StockTakeID,
			ProductID:        m.Lines[i].ProductID,
			ProductName:      m.Lines[i].ProductName,
			ExpectedQuantity: m.Lines[i].ExpectedQuantity,
			CountedQuantity:  m.Lines[i].CountedQuantity,
			UnitCost:         m.Lines[i].UnitCost,
		}
	}
	return &inventory.StockTake{
		TenantEntity: m.ToDomainTenantEntity(),
		Reference:    m.Reference,
		Status:       m.Status,
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		Lines:        lines,
	}
}

// FromDomain populates the persistence model from a domain StockTake
func (m *StockTakeModel) FromDomain(st *inventory.StockTake) {
	m.FromDomainTenantEntity(st.TenantEntity)
	m.Reference = st.Reference
	m.Status = st.Status
	m.StartedAt = st.StartedAt
	m.CompletedAt = st.CompletedAt
	m.Lines = make([]StockTakeLineModel, len(st.Lines))
	for i := range st.Lines {
		m.Lines[i] = StockTakeLineModel{
			ID:               st.Lines[i].ID,
			StockTakeID:      st.Lines[i].StockTakeID,
			ProductID:        st.Lines[i].ProductID,
			ProductName:      st.Lines[i].ProductName,
			ExpectedQuantity: st.Lines[i].ExpectedQuantity,
			CountedQuantity:  st.Lines[i].CountedQuantity,
			UnitCost:         st.Lines[i].UnitCost,
		}
	}
}

// StockTakeModelFromDomain creates a new persistence model from a domain StockTake
func StockTakeModelFromDomain(st *inventory.StockTake) *StockTakeModel {
	m := &StockTakeModel{}
	m.FromDomain(st)
	return m
}
