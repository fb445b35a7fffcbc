package dto

import (
	"tradewind/internal/core/entity"
	"tradewind/internal/domain/catalogs/counterparty"
)

// --- Request DTOs ---

// CreateCounterpartyRequest is the request body for creating a counterparty.
type CreateCounterpartyRequest struct {
	Code             string            `json:"code"`
	Name             string            `json:"name" binding:"required"`
	IsCustomer       bool              `json:"isCustomer"`
	IsSupplier       bool              `json:"isSupplier"`
	TaxID            *string           `json:"taxId"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	Email            *string           `json:"email"`
	Phone            *string           `json:"phone"`
	Address          *string           `json:"address"`
	ParentID         *string           `json:"parentId"`
	IsFolder         bool              `json:"isFolder"`
	Attributes       entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCounterpartyRequest) ToEntity() *counterparty.Counterparty {
	c := counterparty.NewCounterparty(r.Code, r.Name)
	c.IsCustomer = r.IsCustomer
	c.IsSupplier = r.IsSupplier
	c.TaxID = r.TaxID
	c.PaymentTermsDays = r.PaymentTermsDays
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.ParentID = r.ParentID
	c.IsFolder = r.IsFolder
	c.Attributes = r.Attributes
	return c
}

// UpdateCounterpartyRequest is the request body for updating a counterparty.
type UpdateCounterpartyRequest struct {
	Code             string            `json:"code"`
	Name             string            `json:"name" binding:"required"`
	IsCustomer       bool              `json:"isCustomer"`
	IsSupplier       bool              `json:"isSupplier"`
	TaxID            *string           `json:"taxId"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	Email            *string           `json:"email"`
	Phone            *string           `json:"phone"`
	Address          *string           `json:"address"`
	ParentID         *string           `json:"parentId"`
	IsFolder         bool              `json:"isFolder"`
	Attributes       entity.Attributes `json:"attributes"`
	Version          int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCounterpartyRequest) ApplyTo(c *counterparty.Counterparty) {
	c.Code = r.Code
	c.Name = r.Name
	c.IsCustomer = r.IsCustomer
	c.IsSupplier = r.IsSupplier
	c.TaxID = r.TaxID
	c.PaymentTermsDays = r.PaymentTermsDays
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.ParentID = r.ParentID
	c.IsFolder = r.IsFolder
	c.Attributes = r.Attributes
	c.Version = r.Version
}

// --- Response DTOs ---

// CounterpartyResponse is the response body for a counterparty.
type CounterpartyResponse struct {
	ID               string            `json:"id"`
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	IsCustomer       bool              `json:"isCustomer"`
	IsSupplier       bool              `json:"isSupplier"`
	TaxID            *string           `json:"taxId,omitempty"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	Email            *string           `json:"email,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Address          *string           `json:"address,omitempty"`
	ParentID         *string           `json:"parentId,omitempty"`
	IsFolder         bool              `json:"isFolder"`
	DeletionMark     bool              `json:"deletionMark"`
	Version          int               `json:"version"`
	Attributes       entity.Attributes `json:"attributes,omitempty"`
}

// FromCounterparty creates response DTO from domain entity.
func FromCounterparty(c *counterparty.Counterparty) *CounterpartyResponse {
	return &CounterpartyResponse{
		ID:               c.ID.String(),
		Code:             c.Code,
		Name:             c.Name,
		IsCustomer:       c.IsCustomer,
		IsSupplier:       c.IsSupplier,
		TaxID:            c.TaxID,
		PaymentTermsDays: c.PaymentTermsDays,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		ParentID:         c.ParentID,
		IsFolder:         c.IsFolder,
		DeletionMark:     c.DeletionMark,
		Version:          c.Version,
		Attributes:       c.Attributes,
	}
}
