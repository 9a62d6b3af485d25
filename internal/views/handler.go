package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/modernblog/internal/feed"
	"github.com/2beens/modernblog/internal/mockdata"
	"github.com/2beens/modernblog/internal/telemetry/tracing"
	"github.com/2beens/modernblog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=builder_mocks_test.go -package=views_test

type pageBuilder interface {
	Home(ctx context.Context, seed int64) *HomePage
	Explore(ctx context.Context, seed int64, params ExploreParams) *ExplorePage
	ForYou(ctx context.Context, seed int64, params ForYouParams) *ForYouPage
	Post(ctx context.Context, seed int64, slug string) (*PostPage, error)
	Profile(ctx context.Context, seed int64) *ProfilePage
}

type CategoriesResponse struct {
	Categories []mockdata.Category `json:"categories"`
}

type Handler struct {
	builder pageBuilder
}

func NewHandler(builder pageBuilder) *Handler {
	return &Handler{
		builder: builder,
	}
}

// SetupRoutes registers the page routes on the given router, which is expected to be
// mounted under /feed.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/home", handler.HandleHome).Methods("GET", "OPTIONS").Name("home")
	router.HandleFunc("/explore", handler.HandleExplore).Methods("GET", "OPTIONS").Name("explore")
	router.HandleFunc("/for-you", handler.HandleForYou).Methods("GET", "OPTIONS").Name("for-you")
	router.HandleFunc("/post/{slug}", handler.HandlePost).Methods("GET", "OPTIONS").Name("post")
	router.HandleFunc("/profile", handler.HandleProfile).Methods("GET", "OPTIONS").Name("profile")
	router.HandleFunc("/categories", handler.HandleCategories).Methods("GET", "OPTIONS").Name("categories")
}

func (handler *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.home")
	defer span.End()

	seed, err := seedParam(r)
	if err != nil {
		http.Error(w, "error, invalid seed", http.StatusBadRequest)
		return
	}

	writeJSON(w, handler.builder.Home(ctx, seed))
}

func (handler *Handler) HandleExplore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.explore")
	defer span.End()

	seed, err := seedParam(r)
	if err != nil {
		http.Error(w, "error, invalid seed", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	params := ExploreParams{
		Query: query.Get("q"),
	}
	if params.Query == "" {
		// links of the old web app use ?search=
		params.Query = query.Get("search")
	}

	if categoryStr := query.Get("category"); categoryStr != "" && categoryStr != "all" {
		params.Category, err = mockdata.ParseCategory(categoryStr)
		if err != nil {
			log.Tracef("explore, parse category: %s", err)
			http.Error(w, "error, unknown category", http.StatusBadRequest)
			return
		}
	}

	params.Sort, err = feed.ParseSortMode(query.Get("sort"))
	if err != nil {
		log.Tracef("explore, parse sort mode: %s", err)
		http.Error(w, "error, unknown sort mode", http.StatusBadRequest)
		return
	}

	writeJSON(w, handler.builder.Explore(ctx, seed, params))
}

func (handler *Handler) HandleForYou(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.for-you")
	defer span.End()

	seed, err := seedParam(r)
	if err != nil {
		http.Error(w, "error, invalid seed", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	var params ForYouParams

	params.Interests, err = mockdata.ParseCategories(query.Get("interests"))
	if err != nil {
		log.Tracef("for you, parse interests: %s", err)
		http.Error(w, "error, unknown interest category", http.StatusBadRequest)
		return
	}

	if tab := query.Get("tab"); tab != "" && tab != ForYouTab {
		params.Tab, err = mockdata.ParseCategory(tab)
		if err != nil {
			log.Tracef("for you, parse tab: %s", err)
			http.Error(w, "error, unknown tab", http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, handler.builder.ForYou(ctx, seed, params))
}

func (handler *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.post")
	defer span.End()

	seed, err := seedParam(r)
	if err != nil {
		http.Error(w, "error, invalid seed", http.StatusBadRequest)
		return
	}

	slug := mux.Vars(r)["slug"]
	if slug == "" {
		http.Error(w, "error, slug empty", http.StatusBadRequest)
		return
	}

	postPage, err := handler.builder.Post(ctx, seed, slug)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "error, post not found", http.StatusNotFound)
			return
		}
		log.Errorf("build post page [%s]: %s", slug, err)
		http.Error(w, "error, failed to get post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, postPage)
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.profile")
	defer span.End()

	seed, err := seedParam(r)
	if err != nil {
		http.Error(w, "error, invalid seed", http.StatusBadRequest)
		return
	}

	writeJSON(w, handler.builder.Profile(ctx, seed))
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, CategoriesResponse{
		Categories: mockdata.Categories(),
	})
}

// seedParam reads the optional seed query param, 0 when not set
func seedParam(r *http.Request) (int64, error) {
	seedStr := r.URL.Query().Get("seed")
	if seedStr == "" {
		return 0, nil
	}
	return strconv.ParseInt(seedStr, 10, 64)
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
