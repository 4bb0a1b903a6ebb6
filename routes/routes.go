package routes

import (
	"cafe-api/config"
	"cafe-api/handlers"
	"cafe-api/middleware"
	"cafe-api/web"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the shared middleware stack and every
// cafe route registered.
func NewRouter(cfg *config.Config, cafes *handlers.CafeHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.SetHTMLTemplate(web.Templates())

	SetupRoutes(r, cfg, cafes)
	return r
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, cafes *handlers.CafeHandler) {
	r.GET("/", handlers.Home)
	r.GET("/health", handlers.Health)

	// ── Read ───────────────────────────────────────────────────────
	r.GET("/random", cafes.Random)
	r.GET("/all", cafes.All)
	r.GET("/search", cafes.Search)

	// ── Write ──────────────────────────────────────────────────────
	r.POST("/add", cafes.Add)
	r.PATCH("/update_price/:id", cafes.UpdatePrice)
	r.GET("/update_price/:id", cafes.UpdatePrice)

	// ── API key gated ──────────────────────────────────────────────
	apiKey := middleware.APIKeyRequired(cfg.APIKey)
	r.DELETE("/report_closed/:id", apiKey, cafes.ReportClosed)
	r.POST("/add/bulk", apiKey, cafes.BulkAdd)
}
