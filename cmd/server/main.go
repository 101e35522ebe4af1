package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logitrack-app/config"
	"logitrack-app/internal/advisory"
	"logitrack-app/internal/handler"
	"logitrack-app/internal/middleware"
	"logitrack-app/internal/models"
	"logitrack-app/internal/ws"
	"logitrack-app/pkg/datastore"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	logger, _ := zap.NewProduction()
	if config.AppConfig.Server.Env == "development" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()
	log := logger.Sugar()

	// 2. Initialize the in-memory store and seed it. State lives for the
	// lifetime of the process; there is no durable storage.
	store := datastore.New()
	datastore.Seed(store, log)

	// 3. Advisory generator (degrades to a fixed message when unconfigured)
	var analyzer advisory.Analyzer
	if key := config.AppConfig.Gemini.APIKey; key != "" {
		ga, err := advisory.NewGeminiAnalyzer(context.Background(), key, config.AppConfig.Gemini.Model, log)
		if err != nil {
			log.Warnw("advisory generator unavailable", "error", err)
			analyzer = advisory.Disabled{}
		} else {
			analyzer = ga
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, trip analysis disabled")
		analyzer = advisory.Disabled{}
	}

	// 4. Websocket hub for live trip updates
	hub := ws.NewHub(log)
	go hub.Run()

	// 5. Initialize Router
	if config.AppConfig.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	authHandler := &handler.AuthHandler{Store: store}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	hubHandler := &handler.HubHandler{}
	hubRoutes := r.Group("/api/v1/hub")
	hubRoutes.Use(middleware.AuthMiddleware())
	{
		hubRoutes.GET("/modules", hubHandler.ListModules)
	}

	tripHandler := &handler.TripHandler{Store: store, Hub: hub, Analyzer: analyzer}
	tripRoutes := r.Group("/api/v1/trips")
	tripRoutes.Use(middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleTripScheduling))
	{
		tripRoutes.GET("", tripHandler.ListTrips)
		tripRoutes.POST("", tripHandler.CreateTrip)
		tripRoutes.GET("/:id", tripHandler.GetTrip)
		tripRoutes.PUT("/:id", tripHandler.UpdateTrip)
		tripRoutes.DELETE("/:id", tripHandler.DeleteTrip)
		tripRoutes.PATCH("/:id/status", tripHandler.SetStatus)
		tripRoutes.GET("/:id/events", tripHandler.ListTripEvents)
		tripRoutes.POST("/:id/analysis", tripHandler.Analyze)
	}

	truckHandler := &handler.TruckHandler{Store: store}
	truckRoutes := r.Group("/api/v1/trucks")
	truckRoutes.Use(middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleTripScheduling))
	{
		truckRoutes.GET("", truckHandler.ListTrucks)
		truckRoutes.POST("", truckHandler.CreateTruck)
		truckRoutes.PUT("/:id", truckHandler.UpdateTruck)
		truckRoutes.DELETE("/:id", truckHandler.DeleteTruck)
	}

	employeeHandler := &handler.EmployeeHandler{Store: store}
	employeeRoutes := r.Group("/api/v1/employees")
	employeeRoutes.Use(middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleTripScheduling))
	{
		employeeRoutes.GET("", employeeHandler.ListEmployees)
		employeeRoutes.GET("/drivers", employeeHandler.ListDrivers)
		employeeRoutes.POST("", employeeHandler.CreateEmployee)
		employeeRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeRoutes.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	directoryHandler := &handler.DirectoryHandler{Store: store}
	directoryRoutes := r.Group("/api/v1")
	directoryRoutes.Use(middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleTripScheduling))
	{
		directoryRoutes.GET("/customers", directoryHandler.ListCustomers)
		directoryRoutes.GET("/locations", directoryHandler.ListLocations)
		directoryRoutes.GET("/fuels", directoryHandler.ListFuels)
	}

	dashboardHandler := &handler.DashboardHandler{Store: store}
	r.GET("/api/v1/dashboard", middleware.AuthMiddleware(), dashboardHandler.GetSummary)

	userHandler := &handler.UserHandler{Store: store}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.AuthMiddleware(models.RoleSuperAdmin))
	{
		adminRoutes.GET("/users", userHandler.ListUsers)
		adminRoutes.POST("/users", userHandler.CreateUser)
		adminRoutes.PUT("/users/:id", userHandler.UpdateUser)
		adminRoutes.DELETE("/users/:id", userHandler.DeleteUser)
	}

	// Placeholder module surfaces, still permission-gated
	r.GET("/api/v1/inventory/status",
		middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleInventory), hubHandler.InventoryStatus)
	r.GET("/api/v1/billing/status",
		middleware.AuthMiddleware(), middleware.RequireModule(models.ModuleBilling), hubHandler.BillingStatus)

	publicHandler := &handler.PublicHandler{}
	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/config", publicHandler.GetPublicConfig)
		publicRoutes.GET("/site-info", publicHandler.GetSiteInfo)
	}

	wsHandler := &handler.WSHandler{Store: store, Hub: hub, Log: log}
	r.GET("/ws/trips/:id", wsHandler.TripFeed)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Infow("server starting", "port", port, "env", config.AppConfig.Server.Env)
	if err := r.Run(":" + port); err != nil {
		log.Fatalw("failed to run server", "error", err)
	}
}
