package invoice

import (
	"context"
	"fmt"
	"time"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/core/tenant"
	"tradewind/internal/domain/catalogs/counterparty"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/registers/stock"
)

// Repository defines Invoice persistence, including payment sub-records.
type Repository interface {
	documents.Repository[*Invoice]

	// GetPayments loads the ordered payment list of an invoice.
	GetPayments(ctx context.Context, docID id.ID) ([]Payment, error)

	// AddPayment appends one payment row.
	AddPayment(ctx context.Context, p Payment) error
}

// Service provides Invoice business logic: numbering, totals, payments,
// stock posting for direct sales.
type Service struct {
	*documents.Service[*Invoice]
	repo           Repository
	counterparties *counterparty.Service
}

// NewService creates an Invoice service. Posting an invoice issues stock
// directly; counterparty payment terms feed the default due date.
func NewService(
	repo Repository,
	gen numerator.Generator,
	stockSvc *stock.Service,
	normalizer *documents.Normalizer,
	counterparties *counterparty.Service,
) *Service {
	svc := &Service{
		repo:           repo,
		counterparties: counterparties,
	}

	svc.Service = documents.NewService(documents.ServiceConfig[*Invoice]{
		Repo:         repo,
		Numerator:    gen,
		NumberPrefix: "INV",
		EntityName:   "invoice",
		Stock:        stockSvc,
		Movements: func(ctx context.Context, inv *Invoice) ([]stock.Movement, error) {
			return normalizer.Movements(ctx, &inv.TradeDocument, "invoice", documents.DirectionIssue)
		},
	})

	svc.Hooks().OnBeforeCreate(svc.applyPaymentTerms)

	return svc
}

// applyPaymentTerms defaults the due date from the counterparty's payment
// terms when none was supplied.
func (s *Service) applyPaymentTerms(ctx context.Context, inv *Invoice) error {
	if !inv.DueDate.IsZero() || inv.CounterpartyID == nil {
		return nil
	}
	cpID, err := id.Parse(*inv.CounterpartyID)
	if err != nil {
		return nil
	}
	cp, err := s.counterparties.GetByID(ctx, cpID)
	if err != nil {
		return nil
	}
	if cp.PaymentTermsDays > 0 {
		inv.DueDate = inv.Date.AddDate(0, 0, cp.PaymentTermsDays)
	}
	return nil
}

// GetByID loads an invoice with lines and payments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	inv, err := s.Service.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.GetPayments(ctx, docID)
	if err != nil {
		return nil, err
	}
	inv.Payments = payments
	return inv, nil
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*Invoice) error) (*Invoice, error) {
	inv, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(inv); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Send issues the invoice; the payment status starts deriving from here.
func (s *Service) Send(ctx context.Context, docID id.ID) (*Invoice, error) {
	return s.transition(ctx, docID, func(inv *Invoice) error {
		if err := inv.Send(); err != nil {
			return err
		}
		inv.RefreshPaymentStatus(time.Now().UTC())
		return nil
	})
}

// Void cancels the invoice.
func (s *Service) Void(ctx context.Context, docID id.ID) (*Invoice, error) {
	return s.transition(ctx, docID, (*Invoice).Void)
}

// RecordPayment appends a payment and persists the re-derived status in
// one transaction.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, p Payment) (*Invoice, error) {
	inv, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if err := inv.RecordPayment(p, time.Now().UTC()); err != nil {
		return nil, err
	}

	txm, ok := tenant.GetTxManager(ctx)
	if !ok {
		return nil, apperror.NewInternal(fmt.Errorf("tx manager not found in context"))
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		saved := inv.Payments[len(inv.Payments)-1]
		if err := s.repo.AddPayment(ctx, saved); err != nil {
			return err
		}
		return s.repo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// RefreshStatus re-derives the payment status against the current time,
// typically from a scheduled overdue sweep.
func (s *Service) RefreshStatus(ctx context.Context, docID id.ID) (*Invoice, error) {
	return s.transition(ctx, docID, func(inv *Invoice) error {
		inv.RefreshPaymentStatus(time.Now().UTC())
		return nil
	})
}
