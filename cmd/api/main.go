package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nitronflow/internal/clock"
	"nitronflow/internal/config"
	"nitronflow/internal/database"
	"nitronflow/internal/handlers"
	"nitronflow/internal/ledger"
	"nitronflow/internal/logger"
	"nitronflow/internal/middleware"
	"nitronflow/internal/models"
	"nitronflow/internal/services"
	"nitronflow/internal/storage"
	"nitronflow/internal/trading"
	"nitronflow/internal/validator"

	_ "nitronflow/internal/docs" // Import swagger docs
)

// @title           Nitron Flow API
// @version         1.0
// @description     Nitron Flow is a personal and business management application: period-based ledgers with automatic rollover of unpaid obligations, a trading journal with daily risk limits, a task board, CRM leads, and support tickets.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	clk := clock.System()

	// Ledger engines, one per ledger kind. Each owns its working set in
	// memory and persists through its store.
	personalLedger := ledger.New(
		storage.NewLedgerStore(db, models.LedgerKindPersonal),
		clk,
		ledger.PolicyIgnorePaidFlag,
	)
	businessLedger := ledger.New(
		storage.NewLedgerStore(db, models.LedgerKindBusiness),
		clk,
		ledger.PolicyRequirePaid,
	)
	tradingEngine := trading.New(storage.NewTradingStore(db), clk)

	for name, loader := range map[string]interface{ Load() error }{
		"personal ledger": personalLedger,
		"business ledger": businessLedger,
		"trading":         tradingEngine,
	} {
		if err := loader.Load(); err != nil {
			return fmt.Errorf("failed to load %s engine: %w", name, err)
		}
	}

	// CRUD services
	taskService := services.NewTaskService(db)
	leadService := services.NewLeadService(db)
	ticketService := services.NewTicketService(db)

	// Handlers
	ledgerHandler := handlers.NewLedgerHandler(map[models.LedgerKind]*ledger.Engine{
		models.LedgerKindPersonal: personalLedger,
		models.LedgerKindBusiness: businessLedger,
	})
	tradingHandler := handlers.NewTradingHandler(tradingEngine)
	taskHandler := handlers.NewTaskHandler(taskService)
	leadHandler := handlers.NewLeadHandler(leadService)
	ticketHandler := handlers.NewTicketHandler(ticketService)

	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Ledger routes, keyed by kind (personal or business)
	ledgers := v1.Group("/ledgers/:kind")
	ledgers.POST("/entries", ledgerHandler.CreateEntry)
	ledgers.GET("/entries", ledgerHandler.GetEntries)
	ledgers.PATCH("/entries/:id", ledgerHandler.UpdateEntry)
	ledgers.DELETE("/entries/:id", ledgerHandler.DeleteEntry)
	ledgers.POST("/entries/:id/pay", ledgerHandler.MarkPaid)
	ledgers.POST("/rollover", ledgerHandler.Rollover)
	ledgers.GET("/summary", ledgerHandler.GetSummary)

	// Trading routes
	tradingGroup := v1.Group("/trading")
	tradingGroup.POST("/executions", tradingHandler.CreateExecution)
	tradingGroup.GET("/executions", tradingHandler.GetExecutions)
	tradingGroup.GET("/statistics", tradingHandler.GetStatistics)
	tradingGroup.GET("/session", tradingHandler.GetSession)
	tradingGroup.GET("/config", tradingHandler.GetConfig)
	tradingGroup.PUT("/config", tradingHandler.PutConfig)
	tradingGroup.POST("/config/unlock", tradingHandler.Unlock)

	// Task board routes
	tasks := v1.Group("/tasks")
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.PATCH("/:id", taskHandler.UpdateTask)
	tasks.POST("/:id/move", taskHandler.MoveTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// CRM lead routes
	leads := v1.Group("/leads")
	leads.POST("", leadHandler.CreateLead)
	leads.GET("", leadHandler.GetLeads)
	leads.PATCH("/:id", leadHandler.UpdateLead)
	leads.DELETE("/:id", leadHandler.DeleteLead)

	// Support ticket routes
	tickets := v1.Group("/tickets")
	tickets.POST("", ticketHandler.CreateTicket)
	tickets.GET("", ticketHandler.GetTickets)
	tickets.PATCH("/:id", ticketHandler.UpdateTicket)
	tickets.DELETE("/:id", ticketHandler.DeleteTicket)

	// Nightly sweep: roll unpaid obligations on both ledgers. The sweep is
	// idempotent within a day, so an extra run after a restart is harmless.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(appConfig.RolloverSchedule, func() {
		sweepLog := logger.Named("rollover")
		for name, eng := range map[string]*ledger.Engine{
			"personal": personalLedger,
			"business": businessLedger,
		} {
			moved := eng.RollUnpaidObligations()
			sweepLog.Infow("sweep complete", "ledger", name, "moved", moved)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule rollover sweep: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Infof("Starting Nitron Flow backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
