package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"institute-backend/controllers/auth"
	"institute-backend/controllers/category"
	"institute-backend/controllers/contact"
	"institute-backend/controllers/course"
	"institute-backend/controllers/enrollment"
	"institute-backend/controllers/institute"
	"institute-backend/controllers/notification"
	"institute-backend/controllers/offer"
	"institute-backend/controllers/otp"
	"institute-backend/controllers/student"
	notificationService "institute-backend/httpServices/notification"
	"institute-backend/logger"
	"institute-backend/middleware"
	enrollmentService "institute-backend/services/enrollment"
	otpService "institute-backend/services/otp"
	"institute-backend/services/session"
)

const sessionTTL = 24 * time.Hour

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	sessions := session.NewManager(os.Getenv("SESSION_SECRET"), sessionTTL)
	sessionMiddleware := middleware.NewSessionMiddleware(sessions)
	notifier := notificationService.NewService()
	asyncLogger := logger.NewAsyncLogger(db)

	otpSvc := otpService.NewService(db, notifier)
	enrollmentSvc := enrollmentService.NewService(db)

	authController := auth.NewAuthController(db, sessions, asyncLogger)
	otpController := otp.NewOTPController(db, otpSvc, asyncLogger)
	courseController := course.NewCourseController(db, asyncLogger)
	categoryController := category.NewCategoryController(db, asyncLogger)
	enrollmentController := enrollment.NewEnrollmentController(db, enrollmentSvc, asyncLogger)
	studentController := student.NewStudentController(db, asyncLogger)
	contactController := contact.NewContactController(db, asyncLogger)
	offerController := offer.NewOfferController(db, asyncLogger)
	instituteController := institute.NewInstituteController(db, asyncLogger)
	notificationController := notification.NewNotificationController(db, notifier, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Start the OTP cleanup scheduler
	otpSvc.StartCleanupScheduler(24 * time.Hour)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authLimiter, authController.Register)
	authGroup.Post("/login", authLimiter, authController.Login)
	authGroup.Post("/logout", authController.Logout)
	authGroup.Get("/me", sessionMiddleware.OptionalAuth(), authController.Me)
	authGroup.Post("/request-otp", authLimiter, otpController.RequestOTP)
	authGroup.Post("/verify-otp", authLimiter, otpController.VerifyOTP)
	authGroup.Post("/reset-password", authLimiter, otpController.ResetPassword)

	/*=============================================================================
	| Public Catalog Routes
	===============================================================================*/
	api.Get("/institute/current", instituteController.Current)
	api.Get("/categories", categoryController.Index)
	api.Get("/categories/:slug", categoryController.Show)
	api.Get("/courses", courseController.Index)
	api.Get("/courses/featured", courseController.Featured)
	api.Get("/courses/by-category/:slug", courseController.ByCategory)
	api.Get("/courses/:id", courseController.Show)
	api.Get("/courses/:id/batches", courseController.Batches)
	api.Get("/batches", courseController.AllBatches)
	api.Get("/offers", offerController.Index)
	api.Post("/contact", contactController.Store)

	/*=============================================================================
	| Student Routes
	===============================================================================*/
	api.Post("/enrollments", sessionMiddleware.RequireStudent(), enrollmentController.Store)
	api.Get("/enrollments/by-student", sessionMiddleware.RequireStudent(), enrollmentController.ByStudent)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(sessionMiddleware.RequireAdmin())
	admin.Get("/students", studentController.Index)
	admin.Get("/students/:id", studentController.Show)
	admin.Post("/students/:id/activate", studentController.Activate)
	admin.Post("/students/:id/deactivate", studentController.Deactivate)
	admin.Get("/enrollments", enrollmentController.Index)
	admin.Get("/enrollments/:id/history", enrollmentController.History)
	admin.Patch("/enrollments/:id/status", enrollmentController.UpdateStatus)
	admin.Patch("/enrollments/:id", enrollmentController.Update)
	admin.Get("/contact", contactController.Index)
	admin.Post("/contact/:id/read", contactController.MarkRead)
	admin.Post("/notifications/bulk-email", notificationController.BulkEmail)
}
