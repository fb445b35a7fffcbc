package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/filter"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// DocumentHandler provides generic HTTP handlers for trade documents.
// Per-type handlers embed it and add their lifecycle actions.
type DocumentHandler[T documents.Doc, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    *documents.Service[T]
	entityName string

	mapCreateDTO func(dto CreateDTO) (T, error)
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(doc T) any
}

// DocumentHandlerConfig configures the document handler.
type DocumentHandlerConfig[T documents.Doc, CreateDTO any, UpdateDTO any] struct {
	Service      *documents.Service[T]
	EntityName   string
	MapCreateDTO func(dto CreateDTO) (T, error)
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(doc T) any
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler[T documents.Doc, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg DocumentHandlerConfig[T, CreateDTO, UpdateDTO],
) *DocumentHandler[T, CreateDTO, UpdateDTO] {
	return &DocumentHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{doc} with filtering and pagination.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	f := documents.DefaultListFilter()
	f.Search = c.Query("search")
	f.Status = c.Query("status")
	f.Limit = h.ParseIntQuery(c, "limit", 50)
	f.Offset = h.ParseIntQuery(c, "offset", 0)
	f.OrderBy = c.DefaultQuery("orderBy", "-date")
	f.IncludeDeleted = c.Query("includeDeleted") == "true"

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		t, err := time.Parse(time.RFC3339, dateFrom)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateFrom format (RFC3339 expected)"))
			return
		}
		f.DateFrom = &t
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		t, err := time.Parse(time.RFC3339, dateTo)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateTo format (RFC3339 expected)"))
			return
		}
		f.DateTo = &t
	}
	if cpID := c.Query("counterpartyId"); cpID != "" {
		parsed, err := id.Parse(cpID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid counterpartyId format"))
			return
		}
		f.CounterpartyID = &parsed
	}
	if posted := c.Query("posted"); posted != "" {
		val := posted == "true"
		f.Posted = &val
	}

	if filterJSON := c.Query("filter"); filterJSON != "" {
		var advFilters []filter.Item
		if err := json.Unmarshal([]byte(filterJSON), &advFilters); err != nil {
			h.Error(c, apperror.NewValidation("invalid filter format (json expected)"))
			return
		}
		f.AdvancedFilters = advFilters
	}

	result, err := h.service.List(ctx, f)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{doc}/:id.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(doc))
}

// GetByNumber handles GET /{doc}/by-number/:number.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) GetByNumber(c *gin.Context) {
	ctx := c.Request.Context()

	number := c.Param("number")
	if number == "" {
		h.Error(c, apperror.NewValidation("number is required"))
		return
	}

	doc, err := h.service.GetByNumber(ctx, number)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(doc))
}

// Create handles POST /{doc}.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.mapCreateDTO(req)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid document payload").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.CompleteIdempotency(c, http.StatusCreated, "application/json", h.mapToDTO(doc))
	c.JSON(http.StatusCreated, h.mapToDTO(doc))
}

// Update handles PUT /{doc}/:id - header-only patch. Lines have their
// own endpoints so totals recompute exactly once per change.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := existing.CanModify(); err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)
	updated.Recalculate()

	if err := h.service.UpdateHeader(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.CompleteIdempotency(c, http.StatusOK, "application/json", h.mapToDTO(updated))
	c.JSON(http.StatusOK, h.mapToDTO(updated))
}

// Delete handles DELETE /{doc}/:id (soft delete).
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Post handles POST /{doc}/:id/post - record stock movements.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Post(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.Post(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// Unpost handles POST /{doc}/:id/unpost - withdraw stock movements.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Unpost(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.Unpost(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// AddLine handles POST /{doc}/:id/lines.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) AddLine(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.LineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := req.ToLine()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	doc, err := h.service.AddLine(ctx, docID, line)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// UpdateLine handles PUT /{doc}/:id/lines/:lineId.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) UpdateLine(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}
	lineID, err := id.Parse(c.Param("lineId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid lineId format"))
		return
	}

	var req dto.LineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := req.ToLine()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}
	line.ID = lineID

	doc, err := h.service.UpdateLine(ctx, docID, line)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// RemoveLine handles DELETE /{doc}/:id/lines/:lineId.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) RemoveLine(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}
	lineID, err := id.Parse(c.Param("lineId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid lineId format"))
		return
	}

	doc, err := h.service.RemoveLine(ctx, docID, lineID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}
