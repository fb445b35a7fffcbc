package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradewind/internal/core/numerator"
	"tradewind/internal/core/tenant"
	"tradewind/internal/domain"
	"tradewind/internal/domain/audit"
	"tradewind/internal/domain/auth"
	"tradewind/internal/domain/catalogs/counterparty"
	"tradewind/internal/domain/catalogs/product"
	"tradewind/internal/domain/catalogs/unit"
	"tradewind/internal/domain/catalogs/warehouse"
	"tradewind/internal/domain/documents"
	"tradewind/internal/domain/documents/creditnote"
	"tradewind/internal/domain/documents/deliverynote"
	"tradewind/internal/domain/documents/goodsreceipt"
	"tradewind/internal/domain/documents/invoice"
	"tradewind/internal/domain/documents/purchaseorder"
	"tradewind/internal/domain/documents/quotation"
	"tradewind/internal/domain/documents/salesorder"
	"tradewind/internal/domain/documents/supplierinvoice"
	"tradewind/internal/domain/registers/stock"
	"tradewind/internal/infrastructure/http/v1/handlers"
	"tradewind/internal/infrastructure/http/v1/middleware"
	"tradewind/internal/infrastructure/storage/postgres"
	"tradewind/internal/infrastructure/storage/postgres/catalog_repo"
	"tradewind/internal/infrastructure/storage/postgres/document_repo"
	"tradewind/internal/infrastructure/storage/postgres/register_repo"
	"tradewind/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// TenantManager manages database pools for all tenants
	TenantManager *tenant.Manager

	// RegistryPool is the connection to the tenant registry database
	RegistryPool *pgxpool.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator for document number generation
	Numerator numerator.Generator

	// Audit records document change history; optional
	Audit *postgres.AuditService

	// IdempotencyEnabled enables idempotency replay on mutating routes
	IdempotencyEnabled bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware, order matters
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints need neither auth nor tenant
	healthHandler := handlers.NewHealthHandler(cfg.RegistryPool, cfg.TenantManager)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
		health.GET("/tenants", healthHandler.TenantsStats)
	}

	v1 := router.Group("/api/v1")
	{
		// Auth routes get TenantDB before JWT validation
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.TenantDB(cfg.TenantManager)) // 1. Resolve tenant, attach pool
		protected.Use(middleware.Auth(cfg.JWTValidator))      // 2. Validate JWT
		protected.Use(middleware.UserContext())               // 3. Propagate user ID to the domain layer

		if cfg.IdempotencyEnabled {
			protected.Use(idempotencyMiddleware(10 * time.Minute))
		}

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerRegisterRoutes(protected)
	}

	return router
}

// idempotencyMiddleware builds a per-request store over the tenant's
// transaction manager taken from context.
func idempotencyMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		txm := postgres.MustGetTxManager(c.Request.Context())
		store := postgres.NewIdempotencyStore(txm, ttl)
		middleware.Idempotency(store)(c)
	}
}

func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints still need the tenant database
	publicAuth := rg.Group("/auth")
	publicAuth.Use(middleware.TenantDB(cfg.TenantManager))

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.TenantDB(cfg.TenantManager))
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// catalogServices bundles the catalog services shared between catalog
// and document wiring.
type catalogServices struct {
	units          *unit.Service
	products       *product.Service
	counterparties *counterparty.Service
	warehouses     *warehouse.Service
}

func newCatalogServices() catalogServices {
	units := unit.NewService(catalog_repo.NewUnitRepo())
	return catalogServices{
		units:          units,
		products:       product.NewService(catalog_repo.NewProductRepo(), units),
		counterparties: counterparty.NewService(catalog_repo.NewCounterpartyRepo()),
		warehouses:     warehouse.NewService(catalog_repo.NewWarehouseRepo()),
	}
}

func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()
	svcs := newCatalogServices()

	// Units carry the conversion endpoints on top of plain CRUD.
	{
		handler := handlers.NewUnitHandler(baseHandler, svcs.units)
		group := catalogs.Group("/units")
		RegisterCatalogRoutes(group, handler, "catalog:unit")
		group.POST("/convert", middleware.RequirePermission("catalog:unit:read"), handler.Convert)
		group.GET("/:id/compatible", middleware.RequirePermission("catalog:unit:read"), handler.CompatibleUnits)
	}

	{
		handler := handlers.NewProductHandler(baseHandler, svcs.products)
		group := catalogs.Group("/products")
		RegisterCatalogRoutes(group, handler, "catalog:product")
		group.GET("/by-sku/:sku", middleware.RequirePermission("catalog:product:read"), handler.FindBySKU)
		group.GET("/:id/units", middleware.RequirePermission("catalog:product:read"), handler.CompatibleUnits)
	}

	{
		handler := handlers.NewCounterpartyHandler(baseHandler, svcs.counterparties)
		group := catalogs.Group("/counterparties")
		RegisterCatalogRoutes(group, handler, "catalog:counterparty")
		group.GET("/by-tax-id/:taxId", middleware.RequirePermission("catalog:counterparty:read"), handler.FindByTaxID)
	}

	{
		handler := handlers.NewWarehouseHandler(baseHandler, svcs.warehouses)
		RegisterCatalogRoutes(catalogs.Group("/warehouses"), handler, "catalog:warehouse")
	}
}

// registerDocumentAudit records lifecycle changes of one document type in
// the audit log. After hooks run once the operation has committed; an audit
// write failure is logged without affecting the operation itself.
func registerDocumentAudit[T documents.Doc](hooks *domain.HookRegistry[T], auditLog *postgres.AuditService, entityType string) {
	if auditLog == nil {
		return
	}

	snapshot := func(doc T) map[string]any {
		return map[string]any{
			"number": doc.DocNumber(),
			"date":   doc.DocDate(),
			"lines":  len(doc.DocLines()),
		}
	}

	hooks.OnAfterCreate(func(ctx context.Context, doc T) error {
		return auditLog.LogChange(ctx, entityType, doc.GetID(), postgres.AuditActionCreate, snapshot(doc))
	})
	hooks.OnAfterUpdate(func(ctx context.Context, doc T) error {
		return auditLog.LogChange(ctx, entityType, doc.GetID(), postgres.AuditActionUpdate, snapshot(doc))
	})
	hooks.OnAfterDelete(func(ctx context.Context, doc T) error {
		return auditLog.LogChange(ctx, entityType, doc.GetID(), postgres.AuditActionDelete, snapshot(doc))
	})
}

func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()
	svcs := newCatalogServices()

	stockService := stock.NewService(register_repo.NewStockRepo())
	normalizer := documents.NewNormalizer(svcs.units, svcs.products)

	// --- QUOTATIONS ---
	{
		service := quotation.NewService(document_repo.NewQuotationRepo(), cfg.Numerator)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, q *quotation.Quotation) error {
			audit.EnrichCreatedBy(ctx, &q.CreatedBy, &q.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, q *quotation.Quotation) error {
			audit.EnrichUpdatedBy(ctx, &q.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "quotation")

		handler := handlers.NewQuotationHandler(baseHandler, service)
		group := docsGroup.Group("/quotations")
		RegisterDocumentRoutes(group, handler, "document:quotation")
		group.POST("/:id/send", middleware.RequirePermission("document:quotation:update"), handler.Send)
		group.POST("/:id/accept", middleware.RequirePermission("document:quotation:update"), handler.Accept)
		group.POST("/:id/reject", middleware.RequirePermission("document:quotation:update"), handler.Reject)
	}

	// --- SALES ORDERS ---
	{
		service := salesorder.NewService(document_repo.NewSalesOrderRepo(), cfg.Numerator)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, so *salesorder.SalesOrder) error {
			audit.EnrichCreatedBy(ctx, &so.CreatedBy, &so.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, so *salesorder.SalesOrder) error {
			audit.EnrichUpdatedBy(ctx, &so.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "sales_order")

		handler := handlers.NewSalesOrderHandler(baseHandler, service)
		group := docsGroup.Group("/sales-orders")
		RegisterDocumentRoutes(group, handler, "document:sales_order")
		group.POST("/:id/confirm", middleware.RequirePermission("document:sales_order:update"), handler.Confirm)
		group.POST("/:id/fulfill", middleware.RequirePermission("document:sales_order:update"), handler.Fulfill)
		group.POST("/:id/cancel", middleware.RequirePermission("document:sales_order:update"), handler.Cancel)
	}

	// --- INVOICES ---
	{
		service := invoice.NewService(
			document_repo.NewInvoiceRepo(),
			cfg.Numerator,
			stockService,
			normalizer,
			svcs.counterparties,
		)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, inv *invoice.Invoice) error {
			audit.EnrichCreatedBy(ctx, &inv.CreatedBy, &inv.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, inv *invoice.Invoice) error {
			audit.EnrichUpdatedBy(ctx, &inv.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "invoice")

		handler := handlers.NewInvoiceHandler(baseHandler, service)
		group := docsGroup.Group("/invoices")
		RegisterDocumentRoutes(group, handler, "document:invoice")
		group.POST("/:id/send", middleware.RequirePermission("document:invoice:update"), handler.Send)
		group.POST("/:id/void", middleware.RequirePermission("document:invoice:update"), handler.Void)
		group.POST("/:id/payments", middleware.RequirePermission("document:invoice:update"), handler.RecordPayment)
		group.POST("/:id/refresh-status", middleware.RequirePermission("document:invoice:read"), handler.RefreshStatus)
	}

	// --- DELIVERY NOTES ---
	{
		service := deliverynote.NewService(document_repo.NewDeliveryNoteRepo(), cfg.Numerator, stockService, normalizer)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, dn *deliverynote.DeliveryNote) error {
			audit.EnrichCreatedBy(ctx, &dn.CreatedBy, &dn.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, dn *deliverynote.DeliveryNote) error {
			audit.EnrichUpdatedBy(ctx, &dn.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "delivery_note")

		handler := handlers.NewDeliveryNoteHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/delivery-notes"), handler, "document:delivery_note")
	}

	// --- CREDIT NOTES ---
	{
		service := creditnote.NewService(document_repo.NewCreditNoteRepo(), cfg.Numerator, stockService, normalizer)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, cn *creditnote.CreditNote) error {
			audit.EnrichCreatedBy(ctx, &cn.CreatedBy, &cn.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, cn *creditnote.CreditNote) error {
			audit.EnrichUpdatedBy(ctx, &cn.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "credit_note")

		handler := handlers.NewCreditNoteHandler(baseHandler, service)
		group := docsGroup.Group("/credit-notes")
		RegisterDocumentRoutes(group, handler, "document:credit_note")
		group.POST("/:id/issue", middleware.RequirePermission("document:credit_note:update"), handler.Issue)
		group.POST("/:id/void", middleware.RequirePermission("document:credit_note:update"), handler.Void)
	}

	// --- PURCHASE ORDERS ---
	{
		service := purchaseorder.NewService(document_repo.NewPurchaseOrderRepo(), cfg.Numerator)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
			audit.EnrichCreatedBy(ctx, &po.CreatedBy, &po.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
			audit.EnrichUpdatedBy(ctx, &po.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "purchase_order")

		handler := handlers.NewPurchaseOrderHandler(baseHandler, service)
		group := docsGroup.Group("/purchase-orders")
		RegisterDocumentRoutes(group, handler, "document:purchase_order")
		group.POST("/:id/send", middleware.RequirePermission("document:purchase_order:update"), handler.Send)
		group.POST("/:id/mark-received", middleware.RequirePermission("document:purchase_order:update"), handler.MarkReceived)
		group.POST("/:id/cancel", middleware.RequirePermission("document:purchase_order:update"), handler.Cancel)
	}

	// --- GOODS RECEIPTS ---
	{
		service := goodsreceipt.NewService(document_repo.NewGoodsReceiptRepo(), cfg.Numerator, stockService, normalizer)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, gr *goodsreceipt.GoodsReceipt) error {
			audit.EnrichCreatedBy(ctx, &gr.CreatedBy, &gr.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, gr *goodsreceipt.GoodsReceipt) error {
			audit.EnrichUpdatedBy(ctx, &gr.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "goods_receipt")

		handler := handlers.NewGoodsReceiptHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/goods-receipts"), handler, "document:goods_receipt")
	}

	// --- SUPPLIER INVOICES ---
	{
		service := supplierinvoice.NewService(document_repo.NewSupplierInvoiceRepo(), cfg.Numerator)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, si *supplierinvoice.SupplierInvoice) error {
			audit.EnrichCreatedBy(ctx, &si.CreatedBy, &si.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, si *supplierinvoice.SupplierInvoice) error {
			audit.EnrichUpdatedBy(ctx, &si.UpdatedBy)
			return nil
		})

		registerDocumentAudit(service.Hooks(), cfg.Audit, "supplier_invoice")

		handler := handlers.NewSupplierInvoiceHandler(baseHandler, service)
		group := docsGroup.Group("/supplier-invoices")
		RegisterDocumentRoutes(group, handler, "document:supplier_invoice")
		group.POST("/:id/accept", middleware.RequirePermission("document:supplier_invoice:update"), handler.Accept)
		group.POST("/:id/dispute", middleware.RequirePermission("document:supplier_invoice:update"), handler.Dispute)
		group.POST("/:id/payments", middleware.RequirePermission("document:supplier_invoice:update"), handler.RecordPayment)
	}
}

func registerRegisterRoutes(rg *gin.RouterGroup) {
	registers := rg.Group("/registers")
	baseHandler := handlers.NewBaseHandler()

	stockService := stock.NewService(register_repo.NewStockRepo())
	stockHandler := handlers.NewStockHandler(baseHandler, stockService)

	stockGroup := registers.Group("/stock")
	stockGroup.GET("/balance/:productId", middleware.RequirePermission("register:stock:read"), stockHandler.Balance)
	stockGroup.GET("/balances/:productId", middleware.RequirePermission("register:stock:read"), stockHandler.Balances)
	stockGroup.GET("/movements/:documentId", middleware.RequirePermission("register:stock:read"), stockHandler.MovementsByDocument)
}
