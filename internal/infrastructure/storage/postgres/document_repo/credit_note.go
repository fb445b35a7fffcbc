package document_repo

import (
	"tradewind/internal/domain/documents/creditnote"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	creditNotesTable     = "doc_credit_notes"
	creditNoteLinesTable = "doc_credit_note_lines"
)

// CreditNoteRepo implements creditnote.Repository.
type CreditNoteRepo struct {
	*BaseDocumentRepo[*creditnote.CreditNote]
}

var _ creditnote.Repository = (*CreditNoteRepo)(nil)

// NewCreditNoteRepo creates a new credit note repository.
func NewCreditNoteRepo() *CreditNoteRepo {
	return &CreditNoteRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			creditNotesTable,
			creditNoteLinesTable,
			postgres.ExtractDBColumns[creditnote.CreditNote](),
			func() *creditnote.CreditNote { return &creditnote.CreditNote{} },
		),
	}
}
