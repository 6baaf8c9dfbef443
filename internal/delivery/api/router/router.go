// Package router wires the API handlers onto echo routes.
package router

import (
	"rentflow/config"
	"rentflow/internal/delivery/api/middleware"
	"rentflow/internal/delivery/api/router/handler"
	"rentflow/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	ContractHandler *handler.ContractHandler
	IdentityHandler *handler.IdentityHandler
	RenewalHandler  *handler.RenewalHandler
	TemplateHandler *handler.TemplateHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

type router struct {
	contractHandler *handler.ContractHandler
	identityHandler *handler.IdentityHandler
	renewalHandler  *handler.RenewalHandler
	templateHandler *handler.TemplateHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		contractHandler: params.ContractHandler,
		identityHandler: params.IdentityHandler,
		renewalHandler:  params.RenewalHandler,
		templateHandler: params.TemplateHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate)

	manager := r.authMiddleware.RequireRole(entity.RoleLandlord, entity.RoleStaff, entity.RoleAdmin)

	contracts := v1.Group("/contracts")
	{
		contracts.POST("", r.contractHandler.Create, manager)
		contracts.GET("", r.contractHandler.List)
		contracts.GET("/:id", r.contractHandler.Get)
		contracts.GET("/:id/missing-fields", r.contractHandler.MissingFields)
		contracts.PATCH("/:id", r.contractHandler.Edit, manager)
		contracts.POST("/:id/sign-landlord", r.contractHandler.SignByLandlord, manager)
		contracts.POST("/:id/send-to-tenant", r.contractHandler.SendToTenant, manager)
		contracts.PATCH("/:id/my-data", r.contractHandler.UpdateMyData)
		contracts.POST("/:id/identity", r.identityHandler.Submit)
		contracts.POST("/:id/sign-tenant", r.contractHandler.SignByTenant)
		contracts.POST("/:id/renewal", r.renewalHandler.Request)
		contracts.POST("/:id/renewal/respond", r.renewalHandler.Respond, manager)
		contracts.GET("/:id/qrcode", r.contractHandler.QRCode)
	}

	buildings := v1.Group("/buildings")
	{
		buildings.GET("/:buildingId/template", r.templateHandler.Get)
		buildings.PUT("/:buildingId/template", r.templateHandler.Upsert, manager)
	}
}

// RegisterTestRoutes exposes token minting when test routes are enabled.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled || r.testHandler == nil {
		return
	}

	test := e.Group("/test")
	test.POST("/token", r.testHandler.IssueToken)
	test.GET("/whoami", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
}
