package documents

import (
	"context"
	"fmt"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/numerator"
	"tradewind/internal/core/tenant"
	"tradewind/internal/core/tx"
	"tradewind/internal/domain"
	"tradewind/internal/domain/registers/stock"
	"tradewind/pkg/logger"
)

// MovementBuilder converts a posted document into stock register rows.
type MovementBuilder[T Doc] func(ctx context.Context, doc T) ([]stock.Movement, error)

// ServiceConfig configures a document service.
type ServiceConfig[T Doc] struct {
	Repo Repository[T]

	// Numbering
	Numerator    numerator.Generator
	NumberPrefix string
	NumberOpts   *numerator.Options

	// Optional in Database-per-Tenant mode (taken from context)
	TxManager tx.Manager

	EntityName string

	// Stock and Movements are set for stock-affecting document types
	Stock     *stock.Service
	Movements MovementBuilder[T]
}

// Service provides shared business logic for one trade document type:
// numbering, totals recomputation, line persistence, posting.
type Service[T Doc] struct {
	repo       Repository[T]
	numerator  numerator.Generator
	numberCfg  numerator.Config
	numberOpts *numerator.Options
	txManager  tx.Manager
	entityName string
	stock      *stock.Service
	movements  MovementBuilder[T]
	hooks      *domain.HookRegistry[T]
}

// NewService creates a document service.
func NewService[T Doc](cfg ServiceConfig[T]) *Service[T] {
	return &Service[T]{
		repo:       cfg.Repo,
		numerator:  cfg.Numerator,
		numberCfg:  numerator.DefaultConfig(cfg.NumberPrefix),
		numberOpts: cfg.NumberOpts,
		txManager:  cfg.TxManager,
		entityName: cfg.EntityName,
		stock:      cfg.Stock,
		movements:  cfg.Movements,
		hooks:      domain.NewHookRegistry[T](),
	}
}

// Hooks returns the hook registry for external registration.
func (s *Service[T]) Hooks() *domain.HookRegistry[T] {
	return s.hooks
}

func (s *Service[T]) getTxManager(ctx context.Context) (tx.Manager, error) {
	if s.txManager != nil {
		return s.txManager, nil
	}
	txm, ok := tenant.GetTxManager(ctx)
	if !ok {
		return nil, apperror.NewInternal(fmt.Errorf("tx manager not found in context")).
			WithDetail("entity", s.entityName)
	}
	return txm, nil
}

// Create persists a new document with its lines. The number is assigned
// inside the transaction so concurrent creates cannot collide.
func (s *Service[T]) Create(ctx context.Context, doc T) error {
	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
	}

	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return err
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.DocNumber() == "" {
			number, err := s.numerator.GetNextNumber(ctx, s.numberCfg, s.numberOpts, doc.DocDate())
			if err != nil {
				return fmt.Errorf("generate %s number: %w", s.entityName, err)
			}
			doc.SetNumber(number)
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		if err := s.repo.SaveLines(ctx, doc.GetID(), doc.DocLines()); err != nil {
			return fmt.Errorf("save %s lines: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterCreate, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// GetByID loads a document with its lines.
func (s *Service[T]) GetByID(ctx context.Context, docID id.ID) (T, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return doc, s.normalizeGetErr(err, docID.String())
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return doc, fmt.Errorf("load %s lines: %w", s.entityName, err)
	}
	doc.SetLines(lines)

	return doc, nil
}

// GetByNumber loads a document by its number, with lines.
func (s *Service[T]) GetByNumber(ctx context.Context, number string) (T, error) {
	doc, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return doc, s.normalizeGetErr(err, number)
	}

	lines, err := s.repo.GetLines(ctx, doc.GetID())
	if err != nil {
		return doc, fmt.Errorf("load %s lines: %w", s.entityName, err)
	}
	doc.SetLines(lines)

	return doc, nil
}

// Update rewrites the document header and its full line set in one
// transaction, recomputing totals first. The header update is guarded by
// the version column; a stale version fails with a concurrent
// modification error.
func (s *Service[T]) Update(ctx context.Context, doc T) error {
	stored, err := s.repo.GetByID(ctx, doc.GetID())
	if err != nil {
		return s.normalizeGetErr(err, doc.GetID().String())
	}
	if err := stored.CanModify(); err != nil {
		return err
	}

	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
	}

	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return err
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}
		if err := s.repo.SaveLines(ctx, doc.GetID(), doc.DocLines()); err != nil {
			return fmt.Errorf("save %s lines: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterUpdate, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// UpdateHeader writes only the document header, guarded by the version
// column. Status transitions use it because they must succeed on
// documents whose content is otherwise immutable.
func (s *Service[T]) UpdateHeader(ctx context.Context, doc T) error {
	txm, err := s.getTxManager(ctx)
	if err != nil {
		return err
	}
	return txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// AddLine appends a line and recomputes totals in the same transaction.
func (s *Service[T]) AddLine(ctx context.Context, docID id.ID, line Line) (T, error) {
	return s.mutateLines(ctx, docID, func(doc T) error {
		lines := doc.DocLines()
		line.DocumentID = docID
		if id.IsNil(line.ID) {
			line.ID = id.New()
		}
		line.LineNo = len(lines) + 1
		doc.SetLines(append(lines, line))
		return nil
	})
}

// UpdateLine replaces a line by ID and recomputes totals.
func (s *Service[T]) UpdateLine(ctx context.Context, docID id.ID, line Line) (T, error) {
	return s.mutateLines(ctx, docID, func(doc T) error {
		lines := doc.DocLines()
		for i := range lines {
			if lines[i].ID == line.ID {
				line.DocumentID = docID
				line.LineNo = lines[i].LineNo
				lines[i] = line
				doc.SetLines(lines)
				return nil
			}
		}
		return apperror.NewNotFound("line", line.ID.String())
	})
}

// RemoveLine deletes a line by ID and recomputes totals, so the removed
// line's contribution disappears from the document exactly.
func (s *Service[T]) RemoveLine(ctx context.Context, docID, lineID id.ID) (T, error) {
	return s.mutateLines(ctx, docID, func(doc T) error {
		lines := doc.DocLines()
		for i := range lines {
			if lines[i].ID == lineID {
				lines = append(lines[:i], lines[i+1:]...)
				for j := range lines {
					lines[j].LineNo = j + 1
				}
				doc.SetLines(lines)
				return nil
			}
		}
		return apperror.NewNotFound("line", lineID.String())
	})
}

func (s *Service[T]) mutateLines(ctx context.Context, docID id.ID, mutate func(doc T) error) (T, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return doc, err
	}
	if err := doc.CanModify(); err != nil {
		return doc, err
	}
	if err := mutate(doc); err != nil {
		return doc, err
	}
	if err := s.Update(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Delete soft-deletes a document. Posted documents must be unposted first.
func (s *Service[T]) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return s.normalizeGetErr(err, docID.String())
	}
	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.BeforeDelete, doc); err != nil {
		return err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return err
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterDelete, doc); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// List retrieves documents with filtering.
func (s *Service[T]) List(ctx context.Context, f ListFilter) (domain.ListResult[T], error) {
	return s.repo.List(ctx, f)
}

// Post records the document's stock movements and marks it posted.
// Only configured for stock-affecting document types.
func (s *Service[T]) Post(ctx context.Context, docID id.ID) (T, error) {
	var zero T
	if s.stock == nil || s.movements == nil {
		return zero, apperror.NewBusinessRule(apperror.CodeBusinessRule,
			fmt.Sprintf("%s does not support posting", s.entityName))
	}

	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return zero, err
	}

	poster, ok := any(doc).(Poster)
	if !ok {
		return zero, apperror.NewBusinessRule(apperror.CodeBusinessRule,
			fmt.Sprintf("%s does not support posting", s.entityName))
	}
	if poster.IsPosted() {
		return zero, apperror.NewConflict("document is already posted").
			WithDetail("document_id", docID.String())
	}

	movements, err := s.movements(ctx, doc)
	if err != nil {
		return zero, err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return zero, err
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.stock.Post(ctx, docID, movements); err != nil {
			return err
		}
		poster.MarkPosted()
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return zero, err
	}

	return doc, nil
}

// Unpost removes the document's stock movements and clears the posted flag.
func (s *Service[T]) Unpost(ctx context.Context, docID id.ID) (T, error) {
	var zero T
	if s.stock == nil {
		return zero, apperror.NewBusinessRule(apperror.CodeBusinessRule,
			fmt.Sprintf("%s does not support posting", s.entityName))
	}

	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return zero, err
	}

	poster, ok := any(doc).(Poster)
	if !ok {
		return zero, apperror.NewBusinessRule(apperror.CodeBusinessRule,
			fmt.Sprintf("%s does not support posting", s.entityName))
	}
	if !poster.IsPosted() {
		return zero, apperror.NewConflict("document is not posted").
			WithDetail("document_id", docID.String())
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return zero, err
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.stock.Unpost(ctx, docID); err != nil {
			return err
		}
		poster.MarkUnposted()
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return zero, err
	}

	return doc, nil
}

func (s *Service[T]) normalizeGetErr(err error, idOrNumber any) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, idOrNumber)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", idOrNumber)
}
