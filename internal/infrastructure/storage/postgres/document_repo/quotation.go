package document_repo

import (
	"tradewind/internal/domain/documents/quotation"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	quotationsTable     = "doc_quotations"
	quotationLinesTable = "doc_quotation_lines"
)

// QuotationRepo implements quotation.Repository.
type QuotationRepo struct {
	*BaseDocumentRepo[*quotation.Quotation]
}

var _ quotation.Repository = (*QuotationRepo)(nil)

// NewQuotationRepo creates a new quotation repository.
func NewQuotationRepo() *QuotationRepo {
	return &QuotationRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			quotationsTable,
			quotationLinesTable,
			postgres.ExtractDBColumns[quotation.Quotation](),
			func() *quotation.Quotation { return &quotation.Quotation{} },
		),
	}
}
