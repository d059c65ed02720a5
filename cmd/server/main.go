package main

import (
	"log"

	"court_records_go/config"
	"court_records_go/db"
	"court_records_go/handlers"
	"court_records_go/models"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Initialize(db.Options{
		DBPath:           cfg.DBPath,
		Environment:      cfg.Environment,
		TursoDatabaseURL: cfg.TursoDatabaseURL,
		TursoAuthToken:   cfg.TursoAuthToken,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database, &models.User{}, &models.Advocate{}, &models.Case{}, &models.Procedure{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	h := handlers.New(database)

	api := e.Group("/api")
	{
		api.POST("/users/signup", h.Signup)
		api.PUT("/users", h.UpdateUser)

		api.POST("/advocates", h.CreateAdvocate)
		api.PUT("/advocates", h.UpdateAdvocate)
		api.GET("/advocates/pending", h.PendingAdvocates)

		api.POST("/cases", h.CreateCase)
		api.PUT("/cases", h.UpdateCase)
		api.GET("/cases/:case_no", h.ShowCase)

		api.POST("/procedures", h.CreateProcedure)
		api.PUT("/procedures", h.UpdateProcedure)
		api.GET("/procedures", h.ListProcedures)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
