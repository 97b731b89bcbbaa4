package fx

import (
	"context"

	"Credify/config"
	"Credify/internal/logger"
	"Credify/internal/middleware"
	"Credify/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
	registry *prometheus.Registry,
	metrics *middleware.Metrics,
) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware(metrics))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		credits := api.Group("/credits")
		{
			credits.POST("", handler.CreateCredit)
			credits.GET("", handler.ListCredits)
			credits.GET("/:id", handler.GetCredit)
			credits.PUT("/:id", handler.UpdateCredit)
			credits.DELETE("/:id", handler.DeleteCredit)
			credits.GET("/customer/:customerId/has-card", handler.HasCreditCard)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.ListTransactions)
			transactions.GET("/credit/:creditId", handler.ListTransactionsByCredit)
		}

		reporting := api.Group("/reporting")
		{
			reporting.GET("/salary-summary/:customerId", handler.SalarySummary)
			reporting.POST("/salary-summary-period", handler.SalarySummaryPeriod)
			reporting.GET("/:creditId/transactions", handler.LastTransactionsReport)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
