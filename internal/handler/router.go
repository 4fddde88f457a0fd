package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-monitor/internal/handler/api"
	"parking-monitor/internal/handler/middleware"
	"parking-monitor/internal/handler/view"
	"parking-monitor/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewStatusRouter wires the dashboard, booking API and live feed.
func NewStatusRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, parkingHandler *api.ParkingHandler, liveHandler *api.LiveHandler) {
	setupMiddleware(engine, cfg, logger)
	engine.SetHTMLTemplate(view.Templates())

	setupCommonRoutes(engine)
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: parkingHandler.Index},
		{Method: http.MethodGet, Path: "/details/:parkingId", Handler: parkingHandler.Details},
		{Method: http.MethodPost, Path: "/book-parking", Handler: parkingHandler.BookParking},
		{Method: http.MethodPost, Path: "/release-parking", Handler: parkingHandler.ReleaseParking},
		{Method: http.MethodGet, Path: "/ws", Handler: liveHandler.Stream},
	})
}

// NewPaymentRouter wires the payment microservice.
func NewPaymentRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, paymentHandler *api.PaymentHandler) {
	setupMiddleware(engine, cfg, logger)

	setupCommonRoutes(engine)
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/payment", Handler: paymentHandler.CreatePayment},
		{Method: http.MethodGet, Path: "/payment-history", Handler: paymentHandler.PaymentHistory},
		{Method: http.MethodPost, Path: "/refund", Handler: paymentHandler.Refund},
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupCommonRoutes(engine *gin.Engine) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		slog.Debug("swagger UI enabled", "path", "/swagger/index.html")
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
