package api

import (
	"net/http"
	"time"

	"laytime-calculator/internal/api/handlers"
	"laytime-calculator/internal/api/middleware"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const sweepInterval = 5 * time.Minute

type Options struct {
	VesselDir      string
	CORSOrigins    []string
	ResultCacheTTL time.Duration
	// Registry receives the server's collectors and backs /metrics.
	// A fresh registry is used when nil.
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// Server wires the gin router to the calculators and owns the result caches.
type Server struct {
	engine   *gin.Engine
	laytimes *data.ResultCache[handlers.LaytimeEntry]
	voyages  *data.ResultCache[handlers.VoyageEntry]
}

func NewServer(opts Options) (*Server, error) {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if opts.ResultCacheTTL <= 0 {
		opts.ResultCacheTTL = 30 * time.Minute
	}

	m := metrics.New("laytime-api")
	if err := m.Register(opts.Registry); err != nil {
		return nil, err
	}

	s := &Server{
		laytimes: data.NewResultCache[handlers.LaytimeEntry](opts.ResultCacheTTL, sweepInterval),
		voyages:  data.NewResultCache[handlers.VoyageEntry](opts.ResultCacheTTL, sweepInterval),
	}

	store := data.NewVesselStore(opts.VesselDir)
	laytimeHandler := handlers.NewLaytimeHandler(s.laytimes, m)
	voyageHandler := handlers.NewVoyageHandler(store, s.voyages, m)
	vesselHandler := handlers.NewVesselHandler(store)
	policyHandler := handlers.NewPolicyHandler()

	router := gin.New()
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Logger(opts.Logger, "http"))
	router.Use(m.Handler())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		api.GET("/policies", policyHandler.ListPolicies)

		api.POST("/laytime", laytimeHandler.Calculate)
		api.GET("/laytime/:id/ledger", laytimeHandler.GetLedger)
		api.GET("/laytime/:id/workbook", laytimeHandler.GetWorkbook)

		api.POST("/voyage-cost", voyageHandler.Estimate)
		api.POST("/voyage-cost/compare", voyageHandler.Compare)
		api.GET("/voyage-cost/:id/workbook", voyageHandler.GetWorkbook)
		api.GET("/voyage-cost/:id/scenarios", voyageHandler.GetScenarios)

		api.GET("/vessels", vesselHandler.ListVessels)
		api.GET("/vessels/:id", vesselHandler.GetVessel)
		api.PUT("/vessels/:id", vesselHandler.PutVessel)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": handlers.CodeNotFound, "message": "Not found"}})
	})

	s.engine = router
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// Close stops the cache sweepers.
func (s *Server) Close() {
	s.laytimes.Close()
	s.voyages.Close()
}
