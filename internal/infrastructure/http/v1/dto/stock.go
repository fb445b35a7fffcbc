package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/registers/stock"
)

// BalanceResponse is a single aggregated stock position.
type BalanceResponse struct {
	ProductID   string          `json:"productId"`
	WarehouseID *string         `json:"warehouseId,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	AsOf        time.Time       `json:"asOf"`
}

// FromBalance creates a response from a domain balance.
func FromBalance(b *stock.Balance, asOf time.Time) BalanceResponse {
	resp := BalanceResponse{
		ProductID: b.ProductID.String(),
		Quantity:  b.Quantity,
		AsOf:      asOf,
	}
	if b.WarehouseID != nil {
		wh := b.WarehouseID.String()
		resp.WarehouseID = &wh
	}
	return resp
}

// FromBalances converts a slice of domain balances.
func FromBalances(balances []stock.Balance, asOf time.Time) []BalanceResponse {
	out := make([]BalanceResponse, len(balances))
	for i := range balances {
		out[i] = FromBalance(&balances[i], asOf)
	}
	return out
}

// MovementResponse is one stock register row in API responses.
type MovementResponse struct {
	ID           string          `json:"id"`
	DocumentID   string          `json:"documentId"`
	DocumentType string          `json:"documentType"`
	WarehouseID  string          `json:"warehouseId"`
	ProductID    string          `json:"productId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Period       time.Time       `json:"period"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FromMovement creates a response from a domain movement.
func FromMovement(m *stock.Movement) MovementResponse {
	return MovementResponse{
		ID:           m.ID.String(),
		DocumentID:   m.DocumentID.String(),
		DocumentType: m.DocumentType,
		WarehouseID:  m.WarehouseID.String(),
		ProductID:    m.ProductID.String(),
		Quantity:     m.Quantity,
		Period:       m.Period,
		CreatedAt:    m.CreatedAt,
	}
}

// FromMovements converts a slice of domain movements.
func FromMovements(movements []stock.Movement) []MovementResponse {
	out := make([]MovementResponse, len(movements))
	for i := range movements {
		out[i] = FromMovement(&movements[i])
	}
	return out
}
