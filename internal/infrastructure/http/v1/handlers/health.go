package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradewind/internal/core/tenant"
)

// HealthHandler provides health check endpoints. Readiness checks the
// registry database; tenant pools are created on demand and reported
// through the stats endpoints.
type HealthHandler struct {
	registryPool  *pgxpool.Pool
	tenantManager *tenant.Manager
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registryPool *pgxpool.Pool, tenantManager *tenant.Manager) *HealthHandler {
	return &HealthHandler{
		registryPool:  registryPool,
		tenantManager: tenantManager,
	}
}

// Live handles GET /health/live - liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles GET /health/ready - readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.registryPool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"registry_database": "unhealthy: " + err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"registry_database": "healthy",
		},
	})
}

// Info handles GET /health/info - application information.
func (h *HealthHandler) Info(c *gin.Context) {
	registryStat := h.registryPool.Stat()
	tenantStats := h.tenantManager.Stats()

	c.JSON(http.StatusOK, gin.H{
		"app":     "tradewind",
		"version": "0.1.0",
		"registry_database": map[string]any{
			"total_conns":    registryStat.TotalConns(),
			"acquired_conns": registryStat.AcquiredConns(),
			"idle_conns":     registryStat.IdleConns(),
		},
		"tenants": map[string]any{
			"active_pools":   tenantStats.TotalPools,
			"total_conns":    tenantStats.TotalConns,
			"idle_conns":     tenantStats.IdleConns,
			"acquired_conns": tenantStats.AcquiredConns,
		},
	})
}

// TenantsStats handles GET /health/tenants - per-tenant pool details.
func (h *HealthHandler) TenantsStats(c *gin.Context) {
	stats := h.tenantManager.Stats()

	tenantDetails := make([]gin.H, 0, len(stats.Tenants))
	for _, t := range stats.Tenants {
		tenantDetails = append(tenantDetails, gin.H{
			"tenant_id":      t.TenantID,
			"db_name":        t.DBName,
			"total_conns":    t.TotalConns,
			"idle_conns":     t.IdleConns,
			"acquired_conns": t.AcquiredConns,
			"active_refs":    t.ActiveRefs,
			"last_used":      t.LastUsed,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_pools": stats.TotalPools,
		"total_conns": stats.TotalConns,
		"tenants":     tenantDetails,
	})
}
