package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/purchaseorder"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// PurchaseOrderHandler serves purchase orders: CRUD plus lifecycle
// transitions.
type PurchaseOrderHandler struct {
	*DocumentHandler[*purchaseorder.PurchaseOrder, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]
	service *purchaseorder.Service
}

// NewPurchaseOrderHandler creates a configured purchase order handler.
func NewPurchaseOrderHandler(base *BaseHandler, service *purchaseorder.Service) *PurchaseOrderHandler {
	config := DocumentHandlerConfig[*purchaseorder.PurchaseOrder, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]{
		Service:    service.Service,
		EntityName: "purchase_order",
		MapCreateDTO: func(req dto.CreatePurchaseOrderRequest) (*purchaseorder.PurchaseOrder, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePurchaseOrderRequest, existing *purchaseorder.PurchaseOrder) *purchaseorder.PurchaseOrder {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(po *purchaseorder.PurchaseOrder) any {
			return dto.FromPurchaseOrder(po)
		},
	}

	return &PurchaseOrderHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *PurchaseOrderHandler) transition(c *gin.Context, fn func(ctx *gin.Context, docID id.ID) (*purchaseorder.PurchaseOrder, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	po, err := fn(c, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchaseOrder(po))
}

// Send handles POST /purchase-orders/:id/send.
func (h *PurchaseOrderHandler) Send(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*purchaseorder.PurchaseOrder, error) {
		return h.service.Send(c.Request.Context(), docID)
	})
}

// MarkReceived handles POST /purchase-orders/:id/mark-received.
func (h *PurchaseOrderHandler) MarkReceived(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*purchaseorder.PurchaseOrder, error) {
		return h.service.MarkReceived(c.Request.Context(), docID)
	})
}

// Cancel handles POST /purchase-orders/:id/cancel.
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*purchaseorder.PurchaseOrder, error) {
		return h.service.Cancel(c.Request.Context(), docID)
	})
}
