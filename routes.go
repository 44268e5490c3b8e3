package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eibs-cms/controller"
	"eibs-cms/middleware"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/service"
)

// Route is one entry of the declarative route table. Auth=false means
// public; Auth=true with no roles means any authenticated identity; roles
// narrow it to an allow-list.
type Route struct {
	Method  string
	Path    string
	Auth    bool
	Roles   []model.Role
	Handler fiber.Handler
}

// setupRoutes wires repositories, controllers and the route table onto the
// app. db may be nil (store unconfigured); the readiness gate then answers
// 503 for every /api route except the health check.
func setupRoutes(app *fiber.App, db *gorm.DB, emailSvc *service.EmailService) {
	userRepo := repository.NewUserRepository(db)
	caseStudyRepo := repository.NewCaseStudyRepository(db)
	blogPostRepo := repository.NewBlogPostRepository(db)
	pageRepo := repository.NewPageRepository(db)
	contactRepo := repository.NewContactSubmissionRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	authService := service.NewAuthService(userRepo)

	authController := controller.NewAuthController(authService)
	caseStudyController := controller.NewCaseStudyController(caseStudyRepo)
	blogPostController := controller.NewBlogPostController(blogPostRepo)
	pageController := controller.NewPageController(pageRepo)
	contactController := controller.NewContactController(contactRepo, emailSvc)
	themeController := controller.NewThemeController(settingRepo)
	statsController := controller.NewStatsController(pageRepo, caseStudyRepo, blogPostRepo, contactRepo)

	// Health check bypasses the readiness gate on purpose.
	storeReady := func() bool { return db != nil }
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":         true,
			"timestamp":  time.Now().UnixMilli(),
			"storeReady": storeReady(),
		})
	})

	app.Use("/api/auth/login", middleware.LoginRateLimiter())

	admin := model.RoleAdmin
	editor := model.RoleEditor
	creator := model.RoleContentCreator

	routes := []Route{
		// Auth
		{Method: fiber.MethodPost, Path: "/api/auth/login", Handler: authController.Login},
		{Method: fiber.MethodGet, Path: "/api/auth/me", Auth: true, Handler: authController.Me},

		// Public content. "featured" must precede ":slug".
		{Method: fiber.MethodGet, Path: "/api/case-studies", Handler: caseStudyController.List},
		{Method: fiber.MethodGet, Path: "/api/case-studies/featured", Handler: caseStudyController.Featured},
		{Method: fiber.MethodGet, Path: "/api/case-studies/:slug", Handler: caseStudyController.GetBySlug},
		{Method: fiber.MethodGet, Path: "/api/blog-posts", Handler: blogPostController.ListPublished},
		{Method: fiber.MethodGet, Path: "/api/blog-posts/:slug", Handler: blogPostController.GetPublishedBySlug},
		{Method: fiber.MethodGet, Path: "/api/pages/:slug", Handler: pageController.GetPublishedBySlug},
		{Method: fiber.MethodPost, Path: "/api/contact", Handler: contactController.Create},
		{Method: fiber.MethodGet, Path: "/api/theme", Handler: themeController.Get},

		// Admin: case studies
		{Method: fiber.MethodGet, Path: "/api/admin/case-studies", Auth: true, Handler: caseStudyController.List},
		{Method: fiber.MethodGet, Path: "/api/admin/case-studies/:id", Auth: true, Handler: caseStudyController.GetByID},
		{Method: fiber.MethodPost, Path: "/api/admin/case-studies", Auth: true, Roles: []model.Role{admin, editor}, Handler: caseStudyController.Create},
		{Method: fiber.MethodPatch, Path: "/api/admin/case-studies/:id", Auth: true, Roles: []model.Role{admin, editor}, Handler: caseStudyController.Update},
		{Method: fiber.MethodDelete, Path: "/api/admin/case-studies/:id", Auth: true, Roles: []model.Role{admin}, Handler: caseStudyController.Delete},

		// Admin: blog posts
		{Method: fiber.MethodGet, Path: "/api/admin/blog-posts", Auth: true, Handler: blogPostController.ListAdmin},
		{Method: fiber.MethodGet, Path: "/api/admin/blog-posts/:id", Auth: true, Handler: blogPostController.GetByID},
		{Method: fiber.MethodPost, Path: "/api/admin/blog-posts", Auth: true, Roles: []model.Role{admin, editor, creator}, Handler: blogPostController.Create},
		{Method: fiber.MethodPatch, Path: "/api/admin/blog-posts/:id", Auth: true, Roles: []model.Role{admin, editor, creator}, Handler: blogPostController.Update},
		{Method: fiber.MethodDelete, Path: "/api/admin/blog-posts/:id", Auth: true, Roles: []model.Role{admin, editor}, Handler: blogPostController.Delete},

		// Admin: pages
		{Method: fiber.MethodGet, Path: "/api/admin/pages", Auth: true, Handler: pageController.ListAdmin},
		{Method: fiber.MethodGet, Path: "/api/admin/pages/:id", Auth: true, Handler: pageController.GetByID},
		{Method: fiber.MethodPost, Path: "/api/admin/pages", Auth: true, Roles: []model.Role{admin, editor}, Handler: pageController.Create},
		{Method: fiber.MethodPatch, Path: "/api/admin/pages/:id", Auth: true, Roles: []model.Role{admin, editor}, Handler: pageController.Update},
		{Method: fiber.MethodDelete, Path: "/api/admin/pages/:id", Auth: true, Roles: []model.Role{admin}, Handler: pageController.Delete},

		// Admin: contact submissions
		{Method: fiber.MethodGet, Path: "/api/admin/contact-submissions", Auth: true, Roles: []model.Role{admin, editor}, Handler: contactController.List},
		{Method: fiber.MethodPatch, Path: "/api/admin/contact-submissions/:id/status", Auth: true, Roles: []model.Role{admin, editor}, Handler: contactController.UpdateStatus},

		// Admin: theme and dashboard
		{Method: fiber.MethodPut, Path: "/api/admin/theme", Auth: true, Roles: []model.Role{admin}, Handler: themeController.Update},
		{Method: fiber.MethodPatch, Path: "/api/admin/theme", Auth: true, Roles: []model.Role{admin}, Handler: themeController.Update},
		{Method: fiber.MethodGet, Path: "/api/admin/stats", Auth: true, Handler: statsController.Get},
	}

	registerRoutes(app, routes, storeReady, userRepo)
}

// registerRoutes composes readiness → authentication → role gate → handler
// for every table entry. One dispatcher; no per-route inline chains.
func registerRoutes(app *fiber.App, routes []Route, storeReady func() bool, userRepo repository.UserRepository) {
	readiness := middleware.RequireStore(storeReady)
	authenticate := middleware.RequireAuth(userRepo)

	for _, route := range routes {
		handlers := []fiber.Handler{readiness}
		if route.Auth {
			handlers = append(handlers, authenticate)
		}
		if len(route.Roles) > 0 {
			handlers = append(handlers, middleware.RequireRole(route.Roles...))
		}
		handlers = append(handlers, route.Handler)
		app.Add(route.Method, route.Path, handlers...)
	}
}
