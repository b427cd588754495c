// Package httpapi wires the gin engine to the marketplace services and
// mounts the shared middleware chain in front of the handlers.
package httpapi

import (
	"context"
	"net/http"
	"path"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/go-marketplace/internal/config"
	"github.com/tbourn/go-marketplace/internal/docs"
	"github.com/tbourn/go-marketplace/internal/http/handlers"
	"github.com/tbourn/go-marketplace/internal/http/middleware"
	"github.com/tbourn/go-marketplace/internal/repo"
	"github.com/tbourn/go-marketplace/internal/services"
)

// RegisterRoutes mounts the middleware chain, the operational endpoints
// (/health, /metrics, /swagger) and the marketplace API under
// cfg.APIBasePath.
//
// Chain order: otelgin, RequestID, Logger, Recovery, body limit, gzip,
// Metrics, idempotency, rate limiter, CORS, security headers. The
// idempotency validator runs before the limiter so replays bypass it.
func RegisterRoutes(r *gin.Engine, st *repo.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	catalogSvc := services.NewCatalogService(st)
	entitlementSvc := services.NewEntitlementService(st)
	ownershipSvc := services.NewOwnershipService(st)

	r.Use(
		otelgin.Middleware(cfg.OTEL.ServiceName),
		middleware.RequestID(),
		middleware.Logger(middleware.LogOptions{MaskHeaders: []string{"X-API-Key"}}),
		middleware.Recovery(),
		limitBody(1<<20),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
		middleware.Metrics(),
	)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Only a purchase retried with the key that created it is a replay.
	replayed := func(ctx context.Context, userID, itemID, key string) (bool, error) {
		return entitlementSvc.IsPurchaseReplay(ctx, userID, itemID, key), nil
	}
	r.Use(
		middleware.IdempotencyValidator(middleware.IdempotencyOptions{
			MaxLen: cfg.IdempotencyKeyMaxLen,
			ReplayRoutes: []string{
				path.Join(cfg.APIBasePath, "/books/:id/purchase"),
				path.Join(cfg.APIBasePath, "/courses/:id/purchase"),
			},
		}, replayed),
		middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP()).Handler(),
	)
	r.Use(corsChain(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		store := "ok"
		if !st.Available() {
			store = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": store})
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	mountAPI(groupWithPrefix(r, cfg.APIBasePath), handlers.New(catalogSvc, entitlementSvc, ownershipSvc))
}

func mountAPI(api *gin.RouterGroup, h *handlers.Handlers) {
	api.GET("/categories", h.Categories)

	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.POST("", h.CreateBook)
	books.GET("/:id", h.GetBook)
	books.PATCH("/:id", h.UpdateBook)
	books.DELETE("/:id", h.DeleteBook)
	books.POST("/:id/purchase", h.PurchaseBook)
	books.POST("/:id/download", h.DownloadBook)

	courses := api.Group("/courses")
	courses.GET("", h.ListCourses)
	courses.POST("", h.CreateCourse)
	courses.GET("/:id", h.GetCourse)
	courses.PATCH("/:id", h.UpdateCourse)
	courses.DELETE("/:id", h.DeleteCourse)
	courses.POST("/:id/purchase", h.PurchaseCourse)
	courses.POST("/:id/access", h.AccessCourse)

	me := api.Group("/me")
	me.GET("/purchases", h.MyPurchases)
	me.GET("/downloads", h.MyDownloads)
	me.GET("/courses", h.MyCourses)
	me.GET("/uploads", h.MyUploads)
}

// corsChain allows every origin when none are configured. Otherwise the
// allowlisted Origin is echoed back, also on requests gin-contrib/cors
// would skip.
func corsChain(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps request bodies at maxBytes; reads past it fail.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
