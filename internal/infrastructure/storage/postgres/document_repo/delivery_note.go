package document_repo

import (
	"tradewind/internal/domain/documents/deliverynote"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	deliveryNotesTable     = "doc_delivery_notes"
	deliveryNoteLinesTable = "doc_delivery_note_lines"
)

// DeliveryNoteRepo implements deliverynote.Repository.
type DeliveryNoteRepo struct {
	*BaseDocumentRepo[*deliverynote.DeliveryNote]
}

var _ deliverynote.Repository = (*DeliveryNoteRepo)(nil)

// NewDeliveryNoteRepo creates a new delivery note repository.
func NewDeliveryNoteRepo() *DeliveryNoteRepo {
	return &DeliveryNoteRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			deliveryNotesTable,
			deliveryNoteLinesTable,
			postgres.ExtractDBColumns[deliverynote.DeliveryNote](),
			func() *deliverynote.DeliveryNote { return &deliverynote.DeliveryNote{} },
		),
	}
}
