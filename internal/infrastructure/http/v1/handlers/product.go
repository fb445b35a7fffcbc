package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/catalogs/product"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog plus SKU lookup.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a configured product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	config := CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    service.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *product.Product) any {
			return dto.FromProduct(e)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindBySKU handles GET /products/by-sku/:sku.
func (h *ProductHandler) FindBySKU(c *gin.Context) {
	ctx := c.Request.Context()

	sku := c.Param("sku")
	if sku == "" {
		h.Error(c, apperror.NewValidation("sku is required"))
		return
	}

	p, err := h.service.FindBySKU(ctx, sku)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p))
}

// CompatibleUnits handles GET /products/:id/units - all units a
// quantity of this product can be expressed in.
func (h *ProductHandler) CompatibleUnits(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	units, err := h.service.CompatibleUnits(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(units))
	for i, u := range units {
		items[i] = dto.FromUnit(u)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
