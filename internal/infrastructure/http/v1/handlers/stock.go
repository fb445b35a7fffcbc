package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/registers/stock"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// StockHandler serves stock register queries: balances and movements.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// asOf parses the optional asOf query parameter, defaulting to now.
func (h *StockHandler) asOf(c *gin.Context) (time.Time, bool) {
	val := c.Query("asOf")
	if val == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid asOf format (RFC3339 expected)"))
		return time.Time{}, false
	}
	return t, true
}

// Balance handles GET /stock/balance/:productId - total quantity across
// all warehouses, optionally as of a point in time.
func (h *StockHandler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	if warehouseStr := c.Query("warehouseId"); warehouseStr != "" {
		warehouseID, err := id.Parse(warehouseStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid warehouseId format"))
			return
		}

		qty, err := h.service.BalanceByWarehouse(ctx, productID, warehouseID, asOf)
		if err != nil {
			h.Error(c, err)
			return
		}

		whID := warehouseStr
		c.JSON(http.StatusOK, dto.BalanceResponse{
			ProductID:   productID.String(),
			WarehouseID: &whID,
			Quantity:    qty,
			AsOf:        asOf,
		})
		return
	}

	qty, err := h.service.Balance(ctx, productID, asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		ProductID: productID.String(),
		Quantity:  qty,
		AsOf:      asOf,
	})
}

// Balances handles GET /stock/balances/:productId - per-warehouse
// positions for a product.
func (h *StockHandler) Balances(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	balances, err := h.service.Balances(ctx, productID, asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromBalances(balances, asOf)})
}

// MovementsByDocument handles GET /stock/movements/:documentId - the
// register rows one document recorded.
func (h *StockHandler) MovementsByDocument(c *gin.Context) {
	ctx := c.Request.Context()

	documentID, err := id.Parse(c.Param("documentId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid documentId format"))
		return
	}

	movements, err := h.service.MovementsByDocument(ctx, documentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromMovements(movements)})
}
