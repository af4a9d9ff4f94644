package models

import (
	"github.com/retail/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for customers.
type CustomerModel struct {
	TenantModel
	Name        string          `gorm:"type:varchar(200);not null"`
	Phone       string          `gorm:"type:varchar(50)"`
	Email       string          `gorm:"type:varchar(200)"`
	Balance     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	StoreCredit decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Balance:      m.Balance,
		StoreCredit:  m.StoreCredit,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Balance = c.Balance
	m.StoreCredit = c.StoreCredit
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for suppliers.
type SupplierModel struct {
	TenantModel
	Name    string          `gorm:"type:varchar(200);not null"`
	Phone   string          `gorm:"type:varchar(50)"`
	Email   string          `gorm:"type:varchar(200)"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Balance:      m.Balance,
	}
}

// FromDomain populates the persistence model from a domain Supplier
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainTenantEntity(s.TenantEntity)
	m.Name = s.Name
	m.Phone = s.Phone
	m.Email = s.Email
	m.Balance = s.Balance
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
