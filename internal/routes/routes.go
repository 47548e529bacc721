package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	"github.com/zaferdrn0/Fzy-sub000/internal/handlers"
	infraRepo "github.com/zaferdrn0/Fzy-sub000/internal/infra/repository"
	"github.com/zaferdrn0/Fzy-sub000/internal/middleware"
	"github.com/zaferdrn0/Fzy-sub000/internal/session"
	ucCustomer "github.com/zaferdrn0/Fzy-sub000/internal/usecase/customer"
	ucSubscription "github.com/zaferdrn0/Fzy-sub000/internal/usecase/subscription"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	detailUC := ucCustomer.NewGetDetail(customerRepo)
	dashboardUC := ucCustomer.NewGetDashboard(customerRepo)
	createSubscriptionUC := ucSubscription.NewCreateSubscription(
		subscriptionRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions, log)
	customerHandler := handlers.NewCustomerHandler(db, detailUC, dashboardUC, auditDispatcher, log)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(db, createSubscriptionUC, auditDispatcher, log)
	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher, log)
	serviceHandler := handlers.NewServiceHandler(db, log)
	eventHandler := handlers.NewEventHandler(db, auditDispatcher, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/user/register", authHandler.Register)
	r.POST("/user/login", authHandler.Login)
	r.GET("/user/check-auth", authHandler.CheckAuth)
	r.GET("/user/logout", authHandler.Logout)

	// ======================================================
	// PROTECTED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, sessions))
	{
		secured.GET("/user/me", authHandler.Me)

		secured.POST("/customer/add", customerHandler.Add)
		secured.GET("/customer/list", customerHandler.List)
		secured.GET("/customer/dashboard/:id", customerHandler.Dashboard)
		secured.GET("/customer/:id", customerHandler.Detail)
		secured.PUT("/customer/:id", customerHandler.Update)
		secured.DELETE("/customer/:id", customerHandler.Delete)

		secured.POST("/appointment/add", appointmentHandler.Add)
		secured.GET("/appointment/previous", appointmentHandler.Previous)
		secured.GET("/appointment/list", appointmentHandler.List)
		secured.PUT("/appointment/:id", appointmentHandler.Update)
		secured.DELETE("/appointment/:id", appointmentHandler.Delete)

		secured.POST("/subscription/add", subscriptionHandler.Add)
		secured.PUT("/subscription/:id", subscriptionHandler.Update)
		secured.DELETE("/subscription/:id", subscriptionHandler.Delete)

		secured.POST("/payment/add", paymentHandler.Add)
		secured.PUT("/payment/:id", paymentHandler.Update)
		secured.DELETE("/payment/:id", paymentHandler.Delete)

		secured.GET("/service/list", serviceHandler.List)

		secured.POST("/event/add/:customerId", eventHandler.Add)

		secured.GET("/audit/logs", auditLogsHandler.List)
	}
}
