package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	api := r.Group("/api")

	registerAccountRoutes(api, services.Account, services.Ledger)
	registerTransferRoutes(api, services.Ledger)
}
