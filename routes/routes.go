package routes

import (
	"hostel-booking/config"
	accommodationController "hostel-booking/controllers/accommodation"
	allotmentController "hostel-booking/controllers/allotment"
	authController "hostel-booking/controllers/auth"
	dashboardController "hostel-booking/controllers/dashboard"
	exportController "hostel-booking/controllers/export"
	roomController "hostel-booking/controllers/room"
	supportController "hostel-booking/controllers/support"
	"hostel-booking/httpServices/mailer"
	"hostel-booking/httpServices/razorpay"
	"hostel-booking/logger"
	"hostel-booking/middleware"
	accommodationService "hostel-booking/services/accommodation"
	allotmentService "hostel-booking/services/allotment"
	paymentService "hostel-booking/services/payment"
	"hostel-booking/storage"
	"hostel-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	store := storage.NewGormStore(db)
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	mailClient := mailer.NewClient(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.EmailDisabled)
	asyncLogger := logger.NewAsyncLogger(db)

	accoSvc := accommodationService.NewService(store, gateway, mailClient, cfg)
	paySvc := paymentService.NewService(store, mailClient, cfg)
	allotSvc := allotmentService.NewService(store, mailClient)

	auth := authController.NewAuthController(db, cfg, mailClient)
	acco := accommodationController.NewAccommodationController(db, accoSvc, paySvc)
	allot := allotmentController.NewAllotmentController(db, allotSvc)
	rooms := roomController.NewRoomController(db)
	support := supportController.NewSupportController(db, mailClient)
	dashboard := dashboardController.NewDashboardController(db)
	exports := exportController.NewExportController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "ok",
			Status:  fiber.StatusOK,
		})
	})

	protected := middleware.Protected(cfg)
	adminOnly := middleware.AdminOnly(cfg)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)

	/*=============================================================================
	| Accommodation Routes
	===============================================================================*/
	accoGroup := api.Group("/accommodation")
	accoGroup.Post("/", protected, acco.Store)
	accoGroup.Get("/my", protected, acco.Mine)
	accoGroup.Get("/poll/:orderId", protected, acco.Poll)
	accoGroup.Post("/verify-payment", protected, acco.VerifyPayment)
	accoGroup.Post("/check-in-out", adminOnly, allot.CheckInOut)
	accoGroup.Get("/", adminOnly, acco.Index)
	accoGroup.Get("/:id", protected, acco.Show)

	/*=============================================================================
	| Room Routes
	===============================================================================*/
	roomGroup := api.Group("/room")
	roomGroup.Get("/", protected, rooms.Index)
	roomGroup.Post("/", adminOnly, rooms.Store)
	roomGroup.Get("/:id", protected, rooms.Show)
	roomGroup.Delete("/:id", adminOnly, rooms.Delete)

	/*=============================================================================
	| Allotment Routes
	===============================================================================*/
	allotGroup := api.Group("/allotment")
	allotGroup.Post("/", adminOnly, allot.Store)
	allotGroup.Get("/", adminOnly, allot.Index)

	/*=============================================================================
	| Support Routes
	===============================================================================*/
	supportGroup := api.Group("/support")
	supportGroup.Post("/", protected, support.Store)
	supportGroup.Get("/my", protected, support.Mine)
	supportGroup.Post("/respond", adminOnly, support.Respond)
	supportGroup.Get("/", adminOnly, support.Index)
	supportGroup.Get("/:id", protected, support.Show)

	/*=============================================================================
	| Admin Dashboard & Export Routes
	===============================================================================*/
	dashboardGroup := api.Group("/dashboard", adminOnly)
	dashboardGroup.Get("/stats", dashboard.Stats)
	dashboardGroup.Get("/hostel-utilization", dashboard.HostelUtilization)
	dashboardGroup.Get("/payment-stats", dashboard.PaymentStats)

	exportGroup := api.Group("/export", adminOnly)
	exportGroup.Get("/accommodations", exports.Accommodations)
	exportGroup.Get("/rooms", exports.Rooms)
	exportGroup.Get("/payments", exports.Payments)
}
