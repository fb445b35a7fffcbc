package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/invoice"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	invoicesTable        = "doc_invoices"
	invoiceLinesTable    = "doc_invoice_lines"
	invoicePaymentsTable = "doc_invoice_payments"
)

var paymentColumns = []string{"id", "document_id", "date", "amount", "method", "reference"}

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.Invoice]
}

var _ invoice.Repository = (*InvoiceRepo)(nil)

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			invoicesTable,
			invoiceLinesTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
	}
}

// GetPayments loads the payment list of an invoice, oldest first.
func (r *InvoiceRepo) GetPayments(ctx context.Context, docID id.ID) ([]invoice.Payment, error) {
	q := r.Builder().
		Select(paymentColumns...).
		From(invoicePaymentsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("date", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var payments []invoice.Payment
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// AddPayment appends one payment row.
func (r *InvoiceRepo) AddPayment(ctx context.Context, p invoice.Payment) error {
	q := r.Builder().
		Insert(invoicePaymentsTable).
		Columns(paymentColumns...).
		Values(p.ID, p.DocumentID, p.Date, p.Amount, p.Method, p.Reference)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert payment: %w", err)
	}

	if _, err := r.getTxManager(ctx).GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}
