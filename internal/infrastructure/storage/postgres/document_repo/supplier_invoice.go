package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/supplierinvoice"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	supplierInvoicesTable        = "doc_supplier_invoices"
	supplierInvoiceLinesTable    = "doc_supplier_invoice_lines"
	supplierInvoicePaymentsTable = "doc_supplier_invoice_payments"
)

// SupplierInvoiceRepo implements supplierinvoice.Repository.
type SupplierInvoiceRepo struct {
	*BaseDocumentRepo[*supplierinvoice.SupplierInvoice]
}

var _ supplierinvoice.Repository = (*SupplierInvoiceRepo)(nil)

// NewSupplierInvoiceRepo creates a new supplier invoice repository.
func NewSupplierInvoiceRepo() *SupplierInvoiceRepo {
	return &SupplierInvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			supplierInvoicesTable,
			supplierInvoiceLinesTable,
			postgres.ExtractDBColumns[supplierinvoice.SupplierInvoice](),
			func() *supplierinvoice.SupplierInvoice { return &supplierinvoice.SupplierInvoice{} },
		),
	}
}

// GetPayments loads the payment list of a supplier invoice, oldest first.
func (r *SupplierInvoiceRepo) GetPayments(ctx context.Context, docID id.ID) ([]supplierinvoice.Payment, error) {
	q := r.Builder().
		Select(paymentColumns...).
		From(supplierInvoicePaymentsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("date", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var payments []supplierinvoice.Payment
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// AddPayment appends one payment row.
func (r *SupplierInvoiceRepo) AddPayment(ctx context.Context, p supplierinvoice.Payment) error {
	q := r.Builder().
		Insert(supplierInvoicePaymentsTable).
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
