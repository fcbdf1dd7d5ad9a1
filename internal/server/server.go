package server

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/autoparts/catalog/internal/catalog"
	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"github.com/autoparts/catalog/internal/config"
	obslogger "github.com/autoparts/catalog/internal/observability/logger"
	obsmetrics "github.com/autoparts/catalog/internal/observability/metrics"
	"github.com/autoparts/catalog/internal/order"
	orderdomain "github.com/autoparts/catalog/internal/order/domain"
	"github.com/autoparts/catalog/internal/search"
	searchdomain "github.com/autoparts/catalog/internal/search/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var Module = fx.Module("http.server",
	obsmetrics.Module,
	catalog.Module,
	search.Module,
	order.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	DB         *gorm.DB
	CatalogSvc catalogdomain.Service
	SearchSvc  searchdomain.Service
	OrderSvc   orderdomain.Service
}

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	db         *gorm.DB
	catalogSvc catalogdomain.Service
	searchSvc  searchdomain.Service
	orderSvc   orderdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		db:         p.DB,
		catalogSvc: p.CatalogSvc,
		searchSvc:  p.SearchSvc,
		orderSvc:   p.OrderSvc,
	}
}

func NewEngine(cfg config.Config, log *zap.Logger, reg *prometheus.Registry, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticRoot))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func registerRoutes(r *gin.Engine, s *Server) {
	s.RegisterAPIRoutes(r)
	s.RegisterAdminRoutes(r)
}

func (s *Server) RegisterAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)

	api.GET("/search", s.Search)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
}

func (s *Server) RegisterAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")

	admin.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/products")
	})
	admin.GET("/products", s.AdminProducts)
	admin.GET("/products/new", s.AdminNewProductForm)
	admin.POST("/products/new", s.AdminCreateProduct)
	admin.GET("/products/:id/edit", s.AdminEditProductForm)
	admin.POST("/products/:id/edit", s.AdminUpdateProduct)
	admin.GET("/orders", s.AdminOrders)
	admin.GET("/orders/:id", s.AdminOrderDetails)
	admin.POST("/orders/:id/status", s.AdminUpdateOrderStatus)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
