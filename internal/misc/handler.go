package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/modernblog/internal/telemetry/tracing"
	"github.com/2beens/modernblog/pkg"
)

const (
	healthStatusOK       = "ok"
	healthStatusDisabled = "disabled"
	healthStatusDown     = "down"

	redisPingTimeout = 2 * time.Second
)

type HealthResponse struct {
	Status  string `json:"status"`
	Redis   string `json:"redis"`
	Version string `json:"version,omitempty"`
}

type Handler struct {
	versionInfo string
	// redisClient is nil when rate limiting is disabled
	redisClient *redis.Client
}

func NewHandler(versionInfo string, redisClient *redis.Client) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		redisClient: redisClient,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	resp := HealthResponse{
		Status:  healthStatusOK,
		Redis:   healthStatusDisabled,
		Version: handler.versionInfo,
	}
	statusCode := http.StatusOK

	if handler.redisClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()

		if err := handler.redisClient.Ping(pingCtx).Err(); err != nil {
			log.Errorf("health check, redis ping: %s", err)
			span.SetStatus(codes.Error, err.Error())
			resp.Status = healthStatusDown
			resp.Redis = healthStatusDown
			statusCode = http.StatusServiceUnavailable
		} else {
			resp.Redis = healthStatusOK
		}
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
