package handlers

import (
	"tradewind/internal/domain/documents/deliverynote"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// DeliveryNoteHTTPHandler is the configured generic handler type.
// Delivery notes have no lifecycle beyond post/unpost, which the
// generic handler already provides.
type DeliveryNoteHTTPHandler = DocumentHandler[
	*deliverynote.DeliveryNote,
	dto.CreateDeliveryNoteRequest,
	dto.UpdateDeliveryNoteRequest,
]

// NewDeliveryNoteHandler creates a configured delivery note handler.
func NewDeliveryNoteHandler(base *BaseHandler, service *deliverynote.Service) *DeliveryNoteHTTPHandler {
	config := DocumentHandlerConfig[
		*deliverynote.DeliveryNote,
		dto.CreateDeliveryNoteRequest,
		dto.UpdateDeliveryNoteRequest,
	]{
		Service:    service.Service,
		EntityName: "delivery_note",
		MapCreateDTO: func(req dto.CreateDeliveryNoteRequest) (*deliverynote.DeliveryNote, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateDeliveryNoteRequest, existing *deliverynote.DeliveryNote) *deliverynote.DeliveryNote {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(dn *deliverynote.DeliveryNote) any {
			return dto.FromDeliveryNote(dn)
		},
	}

	return NewDocumentHandler(base, config)
}
