package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nitronflow/internal/clock"
	"nitronflow/internal/handlers"
	"nitronflow/internal/ledger"
	"nitronflow/internal/logger"
	"nitronflow/internal/middleware"
	"nitronflow/internal/models"
	"nitronflow/internal/services"
	"nitronflow/internal/storage"
	"nitronflow/internal/trading"
	"nitronflow/internal/validator"
)

// testApp holds the full application stack for integration tests. Clock is
// the manual clock all three engines run on, so tests can cross day and
// month boundaries.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Clock    *clock.Manual
	Personal *ledger.Engine
	Business *ledger.Engine
	Trading  *trading.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// testStart is a mid-month anchor; individual tests move the clock from here.
var testStart = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:flowdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.LedgerEntry{},
		&models.TradeExecution{},
		&models.RiskConfig{},
		&models.Task{},
		&models.Lead{},
		&models.Ticket{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database, mirroring the wiring in cmd/api.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	clk := clock.NewManual(testStart)

	personal := ledger.New(storage.NewLedgerStore(db, models.LedgerKindPersonal), clk, ledger.PolicyIgnorePaidFlag)
	business := ledger.New(storage.NewLedgerStore(db, models.LedgerKindBusiness), clk, ledger.PolicyRequirePaid)
	tradingEngine := trading.New(storage.NewTradingStore(db), clk)

	for _, eng := range []interface{ Load() error }{personal, business, tradingEngine} {
		if err := eng.Load(); err != nil {
			t.Fatalf("failed to load engine: %v", err)
		}
	}

	ledgerHandler := handlers.NewLedgerHandler(map[models.LedgerKind]*ledger.Engine{
		models.LedgerKindPersonal: personal,
		models.LedgerKindBusiness: business,
	})
	tradingHandler := handlers.NewTradingHandler(tradingEngine)
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(db))
	leadHandler := handlers.NewLeadHandler(services.NewLeadService(db))
	ticketHandler := handlers.NewTicketHandler(services.NewTicketService(db))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	ledgers := v1.Group("/ledgers/:kind")
	ledgers.POST("/entries", ledgerHandler.CreateEntry)
	ledgers.GET("/entries", ledgerHandler.GetEntries)
	ledgers.PATCH("/entries/:id", ledgerHandler.UpdateEntry)
	ledgers.DELETE("/entries/:id", ledgerHandler.DeleteEntry)
	ledgers.POST("/entries/:id/pay", ledgerHandler.MarkPaid)
	ledgers.POST("/rollover", ledgerHandler.Rollover)
	ledgers.GET("/summary", ledgerHandler.GetSummary)

	tradingGroup := v1.Group("/trading")
	tradingGroup.POST("/executions", tradingHandler.CreateExecution)
	tradingGroup.GET("/executions", tradingHandler.GetExecutions)
	tradingGroup.GET("/statistics", tradingHandler.GetStatistics)
	tradingGroup.GET("/session", tradingHandler.GetSession)
	tradingGroup.GET("/config", tradingHandler.GetConfig)
	tradingGroup.PUT("/config", tradingHandler.PutConfig)
	tradingGroup.POST("/config/unlock", tradingHandler.Unlock)

	tasks := v1.Group("/tasks")
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.PATCH("/:id", taskHandler.UpdateTask)
	tasks.POST("/:id/move", taskHandler.MoveTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	leads := v1.Group("/leads")
	leads.POST("", leadHandler.CreateLead)
	leads.GET("", leadHandler.GetLeads)
	leads.PATCH("/:id", leadHandler.UpdateLead)
	leads.DELETE("/:id", leadHandler.DeleteLead)

	tickets := v1.Group("/tickets")
	tickets.POST("", ticketHandler.CreateTicket)
	tickets.GET("", ticketHandler.GetTickets)
	tickets.PATCH("/:id", ticketHandler.UpdateTicket)
	tickets.DELETE("/:id", ticketHandler.DeleteTicket)

	return &testApp{
		DB:       db,
		Router:   router,
		Clock:    clk,
		Personal: personal,
		Business: business,
		Trading:  tradingEngine,
	}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
