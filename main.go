package main

import (
	"log"
	"talenta/config"
	"talenta/database"
	authRoutes "talenta/routers/authRoutes"
	courseRoutes "talenta/routers/courseRoutes"
	enrollmentRoutes "talenta/routers/enrollmentRoutes"
	financialAidRoutes "talenta/routers/financialAidRoutes"
	newsletterRoutes "talenta/routers/newsletterRoutes"
	paymentRoutes "talenta/routers/paymentRoutes"
	reviewRoutes "talenta/routers/reviewRoutes"
	universityRoutes "talenta/routers/universityRoutes"
	"talenta/storage"
	"talenta/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	storage.Store = storage.New(database.Database.Db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	universityRoutes.SetupUniversityRoutes(app)
	financialAidRoutes.SetupFinancialAidRoutes(app)
	newsletterRoutes.SetupNewsletterRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	// Periodic aggregation keeps the denormalized course counters honest
	utils.InitializeStatsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
