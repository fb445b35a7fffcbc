package dto

import (
	"github.com/shopspring/decimal"

	"tradewind/internal/core/entity"
	"tradewind/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	SKU            string            `json:"sku" binding:"required"`
	StockUnitID    string            `json:"stockUnitId" binding:"required"`
	SalesUnitID    *string           `json:"salesUnitId"`
	PurchaseUnitID *string           `json:"purchaseUnitId"`
	SalesPrice     decimal.Decimal   `json:"salesPrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TaxRate        decimal.Decimal   `json:"taxRate"`
	ReorderLevel   decimal.Decimal   `json:"reorderLevel"`
	Description    *string           `json:"description"`
	ParentID       *string           `json:"parentId"`
	IsFolder       bool              `json:"isFolder"`
	Attributes     entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.SKU, r.StockUnitID)
	p.SalesUnitID = r.SalesUnitID
	p.PurchaseUnitID = r.PurchaseUnitID
	p.SalesPrice = r.SalesPrice
	p.PurchasePrice = r.PurchasePrice
	p.TaxRate = r.TaxRate
	p.ReorderLevel = r.ReorderLevel
	p.Description = r.Description
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	SKU            string            `json:"sku" binding:"required"`
	StockUnitID    string            `json:"stockUnitId" binding:"required"`
	SalesUnitID    *string           `json:"salesUnitId"`
	PurchaseUnitID *string           `json:"purchaseUnitId"`
	SalesPrice     decimal.Decimal   `json:"salesPrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TaxRate        decimal.Decimal   `json:"taxRate"`
	ReorderLevel   decimal.Decimal   `json:"reorderLevel"`
	Description    *string           `json:"description"`
	ParentID       *string           `json:"parentId"`
	IsFolder       bool              `json:"isFolder"`
	Attributes     entity.Attributes `json:"attributes"`
	Version        int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.SKU = r.SKU
	p.StockUnitID = r.StockUnitID
	p.SalesUnitID = r.SalesUnitID
	p.PurchaseUnitID = r.PurchaseUnitID
	p.SalesPrice = r.SalesPrice
	p.PurchasePrice = r.PurchasePrice
	p.TaxRate = r.TaxRate
	p.ReorderLevel = r.ReorderLevel
	p.Description = r.Description
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID             string            `json:"id"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	SKU            string            `json:"sku"`
	StockUnitID    string            `json:"stockUnitId"`
	SalesUnitID    *string           `json:"salesUnitId,omitempty"`
	PurchaseUnitID *string           `json:"purchaseUnitId,omitempty"`
	SalesPrice     decimal.Decimal   `json:"salesPrice"`
	PurchasePrice  decimal.Decimal   `json:"purchasePrice"`
	TaxRate        decimal.Decimal   `json:"taxRate"`
	ReorderLevel   decimal.Decimal   `json:"reorderLevel"`
	Description    *string           `json:"description,omitempty"`
	ParentID       *string           `json:"parentId,omitempty"`
	IsFolder       bool              `json:"isFolder"`
	DeletionMark   bool              `json:"deletionMark"`
	Version        int               `json:"version"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID.String(),
		Code:           p.Code,
		Name:           p.Name,
		SKU:            p.SKU,
		StockUnitID:    p.StockUnitID,
		SalesUnitID:    p.SalesUnitID,
		PurchaseUnitID: p.PurchaseUnitID,
		SalesPrice:     p.SalesPrice,
		PurchasePrice:  p.PurchasePrice,
		TaxRate:        p.TaxRate,
		ReorderLevel:   p.ReorderLevel,
		Description:    p.Description,
		ParentID:       p.ParentID,
		IsFolder:       p.IsFolder,
		DeletionMark:   p.DeletionMark,
		Version:        p.Version,
		Attributes:     p.Attributes,
	}
}
