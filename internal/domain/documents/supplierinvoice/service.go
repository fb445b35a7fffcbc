package supplierinvoice

import (
	"context"
	"fmt"
	"time"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/core/tenant"
	"tradewind/internal/domain/documents"
)

// Repository defines SupplierInvoice persistence, including payments.
type Repository interface {
	documents.Repository[*SupplierInvoice]

	GetPayments(ctx context.Context, docID id.ID) ([]Payment, error)
	AddPayment(ctx context.Context, p Payment) error
}

// Service provides SupplierInvoice business logic.
type Service struct {
	*documents.Service[*SupplierInvoice]
	repo Repository
}

// NewService creates a SupplierInvoice service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	return &Service{
		Service: documents.NewService(documents.ServiceConfig[*SupplierInvoice]{
			Repo:         repo,
			Numerator:    gen,
			NumberPrefix: "SINV",
			EntityName:   "supplier invoice",
		}),
		repo: repo,
	}
}

// GetByID loads a supplier invoice with lines and payments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*SupplierInvoice, error) {
	si, err := s.Service.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.GetPayments(ctx, docID)
	if err != nil {
		return nil, err
	}
	si.Payments = payments
	return si, nil
}

func (s *Service) transition(ctx context.Context, docID id.ID, fn func(*SupplierInvoice) error) (*SupplierInvoice, error) {
	si, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := fn(si); err != nil {
		return nil, err
	}
	if err := s.UpdateHeader(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

// Accept confirms the supplier invoice.
func (s *Service) Accept(ctx context.Context, docID id.ID) (*SupplierInvoice, error) {
	return s.transition(ctx, docID, (*SupplierInvoice).Accept)
}

// Dispute flags the supplier invoice.
func (s *Service) Dispute(ctx context.Context, docID id.ID) (*SupplierInvoice, error) {
	return s.transition(ctx, docID, (*SupplierInvoice).Dispute)
}

// RecordPayment appends an outgoing payment and persists the re-derived
// status in one transaction.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, p Payment) (*SupplierInvoice, error) {
	si, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if err := si.RecordPayment(p, time.Now().UTC()); err != nil {
		return nil, err
	}

	txm, ok := tenant.GetTxManager(ctx)
	if !ok {
		return nil, apperror.NewInternal(fmt.Errorf("tx manager not found in context"))
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		saved := si.Payments[len(si.Payments)-1]
		if err := s.repo.AddPayment(ctx, saved); err != nil {
			return err
		}
		return s.repo.Update(ctx, si)
	})
	if err != nil {
		return nil, err
	}

	return si, nil
}
