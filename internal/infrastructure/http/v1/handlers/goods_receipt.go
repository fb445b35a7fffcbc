package handlers

import (
	"tradewind/internal/domain/documents/goodsreceipt"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// GoodsReceiptHTTPHandler is the configured generic handler type.
type GoodsReceiptHTTPHandler = DocumentHandler[
	*goodsreceipt.GoodsReceipt,
	dto.CreateGoodsReceiptRequest,
	dto.UpdateGoodsReceiptRequest,
]

// NewGoodsReceiptHandler creates a configured goods receipt handler.
func NewGoodsReceiptHandler(base *BaseHandler, service *goodsreceipt.Service) *GoodsReceiptHTTPHandler {
	config := DocumentHandlerConfig[
		*goodsreceipt.GoodsReceipt,
		dto.CreateGoodsReceiptRequest,
		dto.UpdateGoodsReceiptRequest,
	]{
		Service:    service.Service,
		EntityName: "goods_receipt",
		MapCreateDTO: func(req dto.CreateGoodsReceiptRequest) (*goodsreceipt.GoodsReceipt, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateGoodsReceiptRequest, existing *goodsreceipt.GoodsReceipt) *goodsreceipt.GoodsReceipt {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(gr *goodsreceipt.GoodsReceipt) any {
			return dto.FromGoodsReceipt(gr)
		},
	}

	return NewDocumentHandler(base, config)
}
