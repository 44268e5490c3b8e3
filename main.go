package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swag "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "eibs-cms/docs" // registers the swagger spec

	"eibs-cms/middleware"
	"eibs-cms/seeder"
	"eibs-cms/service"
	"eibs-cms/util"
)

// @title           EIBS CMS API
// @version         1.0
// @description     Backend for the EIBS branding agency site and admin console.

// @host            localhost:5000
// @BasePath        /api
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	if err := util.InitJWT(); err != nil {
		log.Fatalf("failed to initialize token signing: %v", err)
	}

	db, err := util.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if db == nil {
		log.Println("WARNING: no database configured; API routes will answer 503 until DATABASE_URL is set")
	} else {
		seeder.Seed(db)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.RequestLogger)

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origin,
			AllowHeaders: "Content-Type, Authorization",
			AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		}))
	}

	app.Get("/swagger/*", swag.HandlerDefault)

	emailService := service.NewEmailService()
	setupRoutes(app, db, emailService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Fatal(app.Listen(":" + port))
}

// errorHandler is the final safety net: anything a handler did not map
// itself becomes a JSON 500 (or the fiber error's own code) with a generic
// message. Stack traces never reach clients.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
