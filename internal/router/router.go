package router

import (
	"github.com/gin-gonic/gin"

	"opsboard/internal/config"
	"opsboard/internal/domain"
	"opsboard/internal/handler"
	"opsboard/internal/middleware"
	"opsboard/internal/service"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Party         *handler.PartyHandler
	Project       *handler.ProjectHandler
	Milestone     *handler.MilestoneHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	BOM           *handler.BOMHandler
	Dashboard     *handler.DashboardHandler
	Export        *handler.ExportHandler
	Attachment    *handler.AttachmentHandler
	Health        *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Vendors and clients
	parties := protected.Group("/parties")
	parties.POST("", h.Party.Create)
	parties.GET("", h.Party.List)
	parties.GET("/:id", h.Party.GetByID)
	parties.PUT("/:id", h.Party.Update)
	parties.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Party.Delete)

	// Projects, with nested milestone / PO / BOM / dashboard / export routes
	projects := protected.Group("/projects")
	projects.POST("", h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.GetByID)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Project.Delete)
	projects.GET("/:id/baseline", h.Project.CheckBaseline)
	projects.POST("/:id/baseline", middleware.RequireRole(domain.RoleAdmin), h.Project.LockBaseline)
	projects.POST("/:id/milestones", h.Milestone.Create)
	projects.GET("/:id/milestones", h.Milestone.ListByProject)
	projects.GET("/:id/purchase-orders", h.PurchaseOrder.ListByProject)
	projects.POST("/:id/bom", h.BOM.Create)
	projects.GET("/:id/bom", h.BOM.ListByProject)
	projects.GET("/:id/dashboard", h.Dashboard.Overview)
	projects.GET("/:id/delay-stats", h.Dashboard.DelayStats)
	projects.GET("/:id/cascade-risks", h.Dashboard.CascadeRisks)
	projects.GET("/:id/export/milestones.csv", h.Export.MilestonesCSV)
	projects.GET("/:id/export/delay-report.xlsx", h.Export.DelayReportXLSX)
	projects.GET("/:id/export/po-register.xlsx", h.Export.PORegisterXLSX)

	// Milestones
	milestones := protected.Group("/milestones")
	milestones.GET("/:id", h.Milestone.GetByID)
	milestones.PATCH("/:id", h.Milestone.Update)
	milestones.PATCH("/:id/date", h.Milestone.ChangeDate)
	milestones.GET("/:id/delay-log", h.Milestone.DelayLog)
	milestones.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Milestone.Delete)

	// Purchase orders
	pos := protected.Group("/purchase-orders")
	pos.POST("", h.PurchaseOrder.Create)
	pos.GET("", h.PurchaseOrder.List)
	pos.GET("/:id", h.PurchaseOrder.GetByID)
	pos.PATCH("/:id/status", h.PurchaseOrder.UpdateStatus)
	pos.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.PurchaseOrder.Delete)

	// BOM items addressed directly
	bomItems := protected.Group("/bom-items")
	bomItems.PUT("/:id", h.BOM.Update)
	bomItems.DELETE("/:id", h.BOM.Delete)

	// Attachments
	attachments := protected.Group("/attachments")
	attachments.POST("", h.Attachment.Upload)
	attachments.GET("", h.Attachment.ListByEntity)
	attachments.GET("/:id/download-url", h.Attachment.DownloadURL)
	attachments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Attachment.Delete)

	return r
}
