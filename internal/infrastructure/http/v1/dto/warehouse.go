package dto

import (
	"tradewind/internal/core/entity"
	"tradewind/internal/domain/catalogs/warehouse"
)

// --- Request DTOs ---

// CreateWarehouseRequest is the request body for creating a warehouse.
type CreateWarehouseRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	Address    *string           `json:"address"`
	IsDefault  bool              `json:"isDefault"`
	ParentID   *string           `json:"parentId"`
	IsFolder   bool              `json:"isFolder"`
	Attributes entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	w := warehouse.NewWarehouse(r.Code, r.Name)
	w.Address = r.Address
	w.IsDefault = r.IsDefault
	w.ParentID = r.ParentID
	w.IsFolder = r.IsFolder
	w.Attributes = r.Attributes
	return w
}

// UpdateWarehouseRequest is the request body for updating a warehouse.
type UpdateWarehouseRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	Address    *string           `json:"address"`
	IsDefault  bool              `json:"isDefault"`
	ParentID   *string           `json:"parentId"`
	IsFolder   bool              `json:"isFolder"`
	Attributes entity.Attributes `json:"attributes"`
	Version    int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateWarehouseRequest) ApplyTo(w *warehouse.Warehouse) {
	w.Code = r.Code
	w.Name = r.Name
	w.Address = r.Address
	w.IsDefault = r.IsDefault
	w.ParentID = r.ParentID
	w.IsFolder = r.IsFolder
	w.Attributes = r.Attributes
	w.Version = r.Version
}

// --- Response DTOs ---

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	ID           string            `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Address      *string           `json:"address,omitempty"`
	IsDefault    bool              `json:"isDefault"`
	ParentID     *string           `json:"parentId,omitempty"`
	IsFolder     bool              `json:"isFolder"`
	DeletionMark bool              `json:"deletionMark"`
	Version      int               `json:"version"`
	Attributes   entity.Attributes `json:"attributes,omitempty"`
}

// FromWarehouse creates response DTO from domain entity.
func FromWarehouse(w *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:           w.ID.String(),
		Code:         w.Code,
		Name:         w.Name,
		Address:      w.Address,
		IsDefault:    w.IsDefault,
		ParentID:     w.ParentID,
		IsFolder:     w.IsFolder,
		DeletionMark: w.DeletionMark,
		Version:      w.Version,
		Attributes:   w.Attributes,
	}
}
