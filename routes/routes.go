package routes

import (
	"net/http"

	"vipcourses/auth"
	"vipcourses/cart"
	"vipcourses/categories"
	"vipcourses/courses"
	"vipcourses/dash"
	"vipcourses/enrollments"
	"vipcourses/hfconfig"
	"vipcourses/middleware"
	"vipcourses/payments"
	"vipcourses/profile"
	"vipcourses/ratelim"
	"vipcourses/telegram"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/coursepic/*filepath", http.Dir("static/coursepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddCourseRoutes(router *httprouter.Router) {
	router.GET("/api/courses", middleware.OptionalAuth(courses.GetCourses))
	router.GET("/api/courses/:courseid", middleware.OptionalAuth(courses.GetCourse))
	router.POST("/api/admin/courses", middleware.AdminOnly(courses.CreateCourse))
	router.PUT("/api/admin/courses/:courseid", middleware.AdminOnly(courses.EditCourse))
	router.DELETE("/api/admin/courses/:courseid", middleware.AdminOnly(courses.DeleteCourse))
}

func AddCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/categories", categories.GetCategories)
	router.POST("/api/admin/categories", middleware.AdminOnly(categories.CreateCategory))
	router.DELETE("/api/admin/categories/:categoryid", middleware.AdminOnly(categories.DeleteCategory))
	router.POST("/api/admin/categories/:categoryid/subcategories", middleware.AdminOnly(categories.CreateSubcategory))
	router.DELETE("/api/admin/subcategories/:subcategoryid", middleware.AdminOnly(categories.DeleteSubcategory))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.PUT("/api/cart", middleware.Authenticate(cart.SetCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddPaymentRoutes(router *httprouter.Router) {
	router.POST("/api/payments", ratelim.RateLimit(middleware.Authenticate(payments.SubmitPayment)))
	router.GET("/api/payments/mine", middleware.Authenticate(payments.GetMyPayments))
	router.GET("/api/payments/access-states", middleware.Authenticate(payments.GetAccessStates))
	router.GET("/api/payments/:paymentid/receipt", middleware.Authenticate(payments.PaymentReceipt))
	router.GET("/api/payments/instructions/qr", ratelim.RateLimit(payments.InstructionsQR))

	router.GET("/api/admin/payments", middleware.AdminOnly(payments.GetPayments))
	router.GET("/api/admin/payments/pending/count", middleware.AdminOnly(payments.GetPendingCount))
	router.POST("/api/admin/payments/:paymentid/review", middleware.AdminOnly(payments.ReviewPayment))
}

func AddEnrollmentRoutes(router *httprouter.Router) {
	router.GET("/api/enrollments/mine", middleware.Authenticate(enrollments.GetMyEnrollments))
	router.POST("/api/enrollments/:enrollmentid/telegram-joined", middleware.Authenticate(enrollments.MarkTelegramJoined))

	router.GET("/api/admin/enrollments", middleware.AdminOnly(enrollments.GetEnrollments))
	router.DELETE("/api/admin/enrollments/:enrollmentid", middleware.AdminOnly(enrollments.DeleteEnrollment))

	// kept at its legacy path; the admin dashboard still posts here
	router.POST("/api/update-enrollment-status", middleware.AdminOnly(enrollments.UpdateEnrollmentStatus))
}

func AddConfigRoutes(router *httprouter.Router) {
	router.GET("/api/config/:type/active", middleware.OptionalAuth(hfconfig.GetActiveConfig))
	router.GET("/api/sitepages", hfconfig.GetSitePages)

	router.GET("/api/admin/config/:type", middleware.AdminOnly(hfconfig.GetConfigs))
	router.GET("/api/admin/config/:type/:id", middleware.AdminOnly(hfconfig.GetConfig))
	router.PUT("/api/admin/config/:type", middleware.AdminOnly(hfconfig.SaveConfig))
	router.POST("/api/admin/config/:type/:id/publish", middleware.AdminOnly(hfconfig.PublishConfig))
	router.GET("/api/admin/config/:type/:id/revisions", middleware.AdminOnly(hfconfig.ListRevisions))
	router.POST("/api/admin/config/defaults", middleware.AdminOnly(hfconfig.EnsureDefaults))
	router.POST("/api/admin/sitepages/seed", middleware.AdminOnly(hfconfig.SeedSitePages))
}

func AddTelegramRoutes(router *httprouter.Router) {
	router.GET("/api/telegram/link/:courseid", middleware.Authenticate(telegram.GetJoinLink))
	router.GET("/api/telegram/clicked", middleware.Authenticate(telegram.GetClicked))
	router.POST("/api/telegram/clicked/:courseid", middleware.Authenticate(telegram.MarkClicked))
}

func AddDashRoutes(router *httprouter.Router) {
	router.GET("/api/admin/overview", middleware.AdminOnly(dash.GetOverview))
	// the websocket handler does its own JWT/admin check (token may arrive
	// via query string)
	router.GET("/ws/admin/pending-payments", dash.PendingPayments)
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetMyProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditMyProfile))

	router.GET("/api/admin/users", middleware.AdminOnly(profile.GetUsers))
	router.PUT("/api/admin/users/:userid/role", middleware.AdminOnly(profile.ChangeRole))
}
