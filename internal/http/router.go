package api

import (
	"log/slog"
	stdhttp "net/http"
	"time"

	intconfig "travelrecords/internal/config"
	h "travelrecords/internal/http/handlers"
	"travelrecords/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine. reg receives the request metrics and is
// served at /metrics.
func NewRouter(env intconfig.Env, hd *h.Handler, reg *prometheus.Registry, log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.NewMetrics(reg).Handler(),
		middleware.RateLimit(env.RateLimitRPS, env.RateLimitBurst),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(h.NotFound)

	r.GET("/health", hd.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	api := r.Group("/api/" + env.APIVersion)
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes(r))

		clients := api.Group("/clients")
		clients.POST("", hd.CreateClient)
		clients.GET("", hd.ListClients)
		clients.GET("/:id", hd.GetClient)
		clients.PUT("/:id", hd.UpdateClient)
		clients.DELETE("/:id", hd.DeleteClient)
		clients.GET("/:id/itinerary", hd.GetClientItinerary)

		airlines := api.Group("/airlines")
		airlines.POST("", hd.CreateAirline)
		airlines.GET("", hd.ListAirlines)
		airlines.GET("/:id", hd.GetAirline)
		airlines.PUT("/:id", hd.UpdateAirline)
		airlines.DELETE("/:id", hd.DeleteAirline)

		flights := api.Group("/flights")
		flights.POST("", hd.CreateFlight)
		flights.GET("", hd.ListFlights)
		flights.GET("/:client_id/:airline_id/:date", hd.GetFlight)
		flights.PUT("/:client_id/:airline_id/:date", hd.UpdateFlight)
		flights.DELETE("/:client_id/:airline_id/:date", hd.DeleteFlight)
	}

	return r
}

// Server wraps r with the timeouts used in production.
func Server(addr string, r stdhttp.Handler) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
