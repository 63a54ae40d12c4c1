package handler

import (
	"net/http"

	_ "fan-globe/docs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router bundles what NewRouter mounts.
type Router struct {
	Signups *SignupHandler
	Globe   *GlobeHandler
	Banner  *FatalBanner
	Metrics http.Handler
	Logger  zerolog.Logger

	// SubmitLimiter throttles signup writes per client; nil disables it.
	SubmitLimiter *RateLimiter
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(rt Router) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(rt.Logger), Recovery(rt.Banner, rt.Logger))

	r.GET("/health", Health)
	if rt.Metrics != nil {
		r.GET("/metrics", gin.WrapH(rt.Metrics))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/status", rt.Banner.Status)

	api.GET("/signups", rt.Signups.List)
	api.POST("/signups", RateLimit(rt.SubmitLimiter), rt.Signups.Submit)
	api.POST("/signups/demo", RateLimit(rt.SubmitLimiter), rt.Signups.Demo)
	api.GET("/signups/export", rt.Signups.Export)
	api.GET("/leaderboard", rt.Signups.Leaderboard)
	api.GET("/markers", rt.Signups.Markers)
	api.GET("/campaign", rt.Signups.Campaign)
	api.GET("/form", rt.Signups.Form)
	api.PUT("/form", rt.Signups.UpdateDraft)

	api.GET("/globe", rt.Globe.Globe)
	api.POST("/globe/pointer", rt.Globe.Pointer)
	api.POST("/globe/wheel", rt.Globe.Wheel)
	api.POST("/globe/touch", rt.Globe.Touch)
	api.POST("/globe/focus", rt.Globe.Focus)
	api.PUT("/globe/theme", rt.Globe.Theme)
	api.GET("/globe/stream", rt.Globe.Stream)

	return r
}
