package handler

import (
	"bank-account-service/internal/adapter/http/middleware"
	"bank-account-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	LedgerSvc      ports.LedgerService
	DebitCardSvc   ports.DebitCardService
	ReportingSvc   ports.ReportingService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MetricsPath    string             // empty = /metrics not exposed
	Mode           string             // gin mode; defaults to release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: pings PostgreSQL and Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsPath != "" {
		r.GET(deps.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("/savings", rl("accounts_open"), accountHandler.CreateSavings)
		accounts.POST("/checking", rl("accounts_open"), accountHandler.CreateChecking)
		accounts.POST("/fixed-term", rl("accounts_open"), accountHandler.CreateFixedTerm)
		accounts.GET("/:id", rl("reads"), accountHandler.Get)
		accounts.DELETE("/:id", rl("accounts_open"), accountHandler.Delete)
		accounts.GET("/:id/balance", rl("reads"), accountHandler.GetBalance)

		accounts.POST("/:id/deposit", rl("ledger"), ledgerHandler.Deposit)
		accounts.POST("/:id/withdraw", rl("ledger"), ledgerHandler.Withdraw)
		accounts.PUT("/:id/signers", rl("ledger"), ledgerHandler.UpdateSigners)
		accounts.POST("/:id/reset-counter", rl("ledger"), ledgerHandler.ResetCounter)
	}
	v1.POST("/transfers", rl("ledger"), ledgerHandler.Transfer)

	reportHandler := NewReportHandler(deps.ReportingSvc)
	customers := v1.Group("/customers/:customerId")
	{
		customers.GET("/accounts", rl("reads"), accountHandler.ListByCustomer)
		customers.GET("/reports/average-daily-balance", rl("reads"), reportHandler.AverageDailyBalance)
		customers.GET("/reports/commissions", rl("reads"), reportHandler.Commissions)
	}

	cardHandler := NewDebitCardHandler(deps.DebitCardSvc)
	cards := v1.Group("/debit-cards")
	{
		cards.POST("", rl("cards"), cardHandler.Create)
		cards.GET("/:id", rl("reads"), cardHandler.Get)
		cards.POST("/:id/accounts", rl("cards"), cardHandler.LinkAccount)
		cards.DELETE("/:id/accounts/:accountId", rl("cards"), cardHandler.UnlinkAccount)
	}
	v1.POST("/payments", rl("payments"), cardHandler.ProcessPayment)

	return r
}
