package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/modernblog/internal/config"
	"github.com/2beens/modernblog/internal/middleware"
	"github.com/2beens/modernblog/internal/misc"
	"github.com/2beens/modernblog/internal/mockdata"
	"github.com/2beens/modernblog/internal/telemetry/metrics"
	"github.com/2beens/modernblog/internal/telemetry/tracing"
	"github.com/2beens/modernblog/internal/views"
)

const (
	mainRouterName = "main-router"
	serviceName    = "modernblog-feed"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	viewsBuilder *views.Builder

	// redis is optional, without it requests are not rate limited
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("modernblog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		viewsBuilder: views.NewBuilder(views.BuilderParams{
			GeneratorOptions:  generatorOptions(params.Config),
			FeedCorpusSize:    params.Config.FeedCorpusSize,
			ProfileCorpusSize: params.Config.ProfileCorpusSize,
			MetricsManager:    metricsManager,
		}),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.RedisHost == "" {
		log.Warnln("redis host not set, rate limiting disabled")
		return s, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, strconv.Itoa(params.Config.RedisPort)),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	s.redisClient = rdb
	s.rateLimiter = redis_rate.NewLimiter(rdb)

	return s, nil
}

func generatorOptions(cfg *config.Config) mockdata.GeneratorOptions {
	opts := mockdata.DefaultGeneratorOptions()
	opts.Seed = cfg.Seed
	opts.FeaturedProbability = cfg.Featured()
	opts.TrendingProbability = cfg.Trending()
	if window := cfg.RecentWindow(); window > 0 {
		opts.RecentWindow = window
	}
	return opts
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware(mainRouterName))

	miscHandler := misc.NewHandler(s.versionInfo, s.redisClient)
	miscHandler.SetupRoutes(r)

	feedRouter := r.PathPrefix("/feed").Subrouter()
	views.NewHandler(s.viewsBuilder).SetupRoutes(feedRouter)
	if s.rateLimiter != nil {
		feedRouter.Use(middleware.RateLimit(
			s.rateLimiter,
			mainRouterName,
			s.config.RateLimitAllowedPerMin,
			s.metricsManager,
		))
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Tracef("unhandled path: [%s] %s", req.Method, req.URL.Path)
		http.NotFound(w, req)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	if s.config.MetricsPort > 0 {
		metricsRouter := mux.NewRouter()
		metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
			s.promRegistry,
			promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		))
		metricsAddr := net.JoinHostPort(s.config.MetricsHost, strconv.Itoa(s.config.MetricsPort))
		s.metricsHttpServer = &http.Server{
			Addr:              metricsAddr,
			Handler:           metricsRouter,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsAddr)
			err := s.metricsHttpServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("metrics service, listen and serve: %s", err)
			}
		}()
	} else {
		log.Warnln("metrics port not set, metrics server disabled")
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
