package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	"github.com/barberconnect/barberconnect-api/internal/config"
	"github.com/barberconnect/barberconnect-api/internal/handlers"
	infraRepo "github.com/barberconnect/barberconnect-api/internal/infra/repository"
	"github.com/barberconnect/barberconnect-api/internal/media"
	"github.com/barberconnect/barberconnect-api/internal/middleware"
	"github.com/barberconnect/barberconnect-api/internal/models"
	"github.com/barberconnect/barberconnect-api/internal/realtime"
	ucBooking "github.com/barberconnect/barberconnect-api/internal/usecase/booking"
	ucReview "github.com/barberconnect/barberconnect-api/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier *realtime.Notifier,
	storage *media.Storage,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — REVIEWS
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(
		reviewRepo,
		auditDispatcher,
	)

	updateReviewUC := ucReview.NewUpdateReview(
		reviewRepo,
		auditDispatcher,
	)

	deleteReviewUC := ucReview.NewDeleteReview(
		reviewRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	shopHandler := handlers.NewShopHandler(db, notifier, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		cancelBookingUC,
		updateBookingStatusUC,
		notifier,
	)

	reviewHandler := handlers.NewReviewHandler(
		db,
		createReviewUC,
		updateReviewUC,
		deleteReviewUC,
		storage,
	)

	realtimeHandler := handlers.NewRealtimeHandler(db, notifier)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.Get)
		api.GET("/reviews/shop/:shopId", reviewHandler.ShopReviews)
		api.GET("/realtime/shops/:shopId/events", realtimeHandler.ShopEvents)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// 👤 CUSTOMER
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/bookings", bookingHandler.Create)
				customer.GET("/bookings/customer/my-bookings", bookingHandler.MyBookings)
				customer.DELETE("/bookings/:id", bookingHandler.Cancel)

				customer.POST("/reviews", reviewHandler.Create)
				customer.GET("/reviews/customer/my-reviews", reviewHandler.MyReviews)
				customer.PUT("/reviews/:id", reviewHandler.Update)
				customer.DELETE("/reviews/:id", reviewHandler.Delete)
				customer.POST("/reviews/:id/photos", reviewHandler.UploadPhoto)
			}

			// ------------------------------
			// 💈 BARBER (SHOP OWNER)
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.POST("/shops", shopHandler.Create)
				barber.GET("/shops/barber/my-shop", shopHandler.MyShop)
				barber.PUT("/shops/:id", shopHandler.Update)
				barber.PUT("/shops/:id/waiting-time", shopHandler.UpdateWaitingTime)

				barber.GET("/bookings/shop/:shopId", bookingHandler.ShopBookings)
				barber.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)

				barber.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
