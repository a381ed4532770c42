package main

import (
	"time"

	"hostel-booking/config"
	"hostel-booking/database"
	"hostel-booking/database/seeders"
	"hostel-booking/logger"
	"hostel-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, using process environment")
	}
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768,
		WriteBufferSize: 32768,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024,
	})

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("Failed to initialize the database", err)
		return
	}
	seeders.SeedRooms(db)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Admin-Password",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, cfg)

	logger.Success("Server is running on " + cfg.AppHost + ":" + cfg.AppPort)
	if err := app.Listen(cfg.AppHost + ":" + cfg.AppPort); err != nil {
		logger.Error("Server stopped", err)
	}
}
