package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/creditnote"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// CreditNoteHandler serves credit notes: CRUD, posting for goods
// returns, and lifecycle transitions.
type CreditNoteHandler struct {
	*DocumentHandler[*creditnote.CreditNote, dto.CreateCreditNoteRequest, dto.UpdateCreditNoteRequest]
	service *creditnote.Service
}

// NewCreditNoteHandler creates a configured credit note handler.
func NewCreditNoteHandler(base *BaseHandler, service *creditnote.Service) *CreditNoteHandler {
	config := DocumentHandlerConfig[*creditnote.CreditNote, dto.CreateCreditNoteRequest, dto.UpdateCreditNoteRequest]{
		Service:    service.Service,
		EntityName: "credit_note",
		MapCreateDTO: func(req dto.CreateCreditNoteRequest) (*creditnote.CreditNote, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateCreditNoteRequest, existing *creditnote.CreditNote) *creditnote.CreditNote {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(cn *creditnote.CreditNote) any {
			return dto.FromCreditNote(cn)
		},
	}

	return &CreditNoteHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *CreditNoteHandler) transition(c *gin.Context, fn func(ctx *gin.Context, docID id.ID) (*creditnote.CreditNote, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	cn, err := fn(c, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCreditNote(cn))
}

// Issue handles POST /credit-notes/:id/issue.
func (h *CreditNoteHandler) Issue(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*creditnote.CreditNote, error) {
		return h.service.Issue(c.Request.Context(), docID)
	})
}

// Void handles POST /credit-notes/:id/void.
func (h *CreditNoteHandler) Void(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*creditnote.CreditNote, error) {
		return h.service.Void(c.Request.Context(), docID)
	})
}
