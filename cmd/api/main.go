package main

import (
	_ "backoffice/api/swagger" // swagger docs
	"backoffice/internal/export"
	"backoffice/internal/handler"
	"backoffice/internal/middleware"
	"backoffice/internal/repository"
	"backoffice/internal/service"
	"backoffice/internal/store"
	"backoffice/internal/websocket"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trading Back Office API
// @version         1.0
// @description     Shipment, warehouse intake and expense reconciliation over the remote records service.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	upstream := os.Getenv("UPSTREAM_BASE_URL")
	if upstream == "" {
		upstream = "http://localhost:3000"
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Store -> Service -> Handler)
	client := repository.NewClient(upstream)
	shipmentRepo := repository.NewShipmentRepository(client)
	containerRepo := repository.NewContainerRepository(client)
	warehouseRepo := repository.NewWarehouseRecordRepository(client)
	customerRepo := repository.NewCustomerRecordRepository(client)
	expenseRepo := repository.NewExpenseRepository(client)

	snapshots := store.New(shipmentRepo, warehouseRepo, customerRepo, expenseRepo, containerRepo)
	joiner := service.NewJoiner()

	metricsService := service.NewMetricsService(snapshots, joiner)
	shipmentService := service.NewShipmentService(snapshots, shipmentRepo, containerRepo, wsHub)
	expenseService := service.NewExpenseService(snapshots, expenseRepo, wsHub)
	receivingService := service.NewReceivingService(snapshots, warehouseRepo, customerRepo)
	intakeService := service.NewIntakeService(snapshots, joiner, warehouseRepo, customerRepo, wsHub)
	exportService := service.NewExportService(snapshots, joiner, export.NewPDFRenderer())

	guard := middleware.NewGuard()

	// Initialize Handlers
	dashboardHandler := handler.NewDashboardHandler(metricsService, snapshots)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, guard)
	warehouseHandler := handler.NewWarehouseHandler(receivingService, guard)
	expenseHandler := handler.NewExpenseHandler(expenseService, guard)
	intakeHandler := handler.NewIntakeHandler(intakeService, guard)
	exportHandler := handler.NewExportHandler(exportService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173,http://127.0.0.1:5173"
	}
	corsConfig.AllowOrigins = strings.Split(origins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	dashboardHandler.RegisterRoutes(router.Group(""))
	shipmentHandler.RegisterRoutes(router.Group(""))
	warehouseHandler.RegisterRoutes(router.Group(""))
	expenseHandler.RegisterRoutes(router.Group(""))
	intakeHandler.RegisterRoutes(router.Group(""))
	exportHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
