package views

import (
	"context"
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/modernblog/internal/feed"
	"github.com/2beens/modernblog/internal/mockdata"
	"github.com/2beens/modernblog/internal/telemetry/metrics"
	"github.com/2beens/modernblog/internal/telemetry/tracing"
)

const (
	DefaultFeedCorpusSize    = 30
	DefaultProfileCorpusSize = 20

	homeFeaturedLimit = 3
	homeTrendingLimit = 4
	homePopularLimit  = 6
	relatedPostsLimit = 3
)

var _ pageBuilder = (*Builder)(nil)

type BuilderParams struct {
	GeneratorOptions mockdata.GeneratorOptions
	// FeedCorpusSize is the number of posts behind the home, explore, for you and post pages.
	FeedCorpusSize    int
	ProfileCorpusSize int
	MetricsManager    *metrics.Manager
}

// Builder builds page view models. Every build generates a fresh corpus, nothing is
// kept between builds. Building the same page twice with the same seed (and clock)
// yields the same content.
type Builder struct {
	generatorOptions  mockdata.GeneratorOptions
	feedCorpusSize    int
	profileCorpusSize int
	metricsManager    *metrics.Manager
}

func NewBuilder(params BuilderParams) *Builder {
	if params.FeedCorpusSize <= 0 {
		params.FeedCorpusSize = DefaultFeedCorpusSize
	}
	if params.ProfileCorpusSize <= 0 {
		params.ProfileCorpusSize = DefaultProfileCorpusSize
	}
	return &Builder{
		generatorOptions:  params.GeneratorOptions,
		feedCorpusSize:    params.FeedCorpusSize,
		profileCorpusSize: params.ProfileCorpusSize,
		metricsManager:    params.MetricsManager,
	}
}

// startBuild resolves the seed, opens the page span and creates the generator for one build.
func (b *Builder) startBuild(ctx context.Context, page string, seed int64) (trace.Span, *mockdata.Generator, int64) {
	if seed == 0 {
		seed = b.generatorOptions.Seed
	}
	if seed == 0 {
		// never 0, it is reported back so the client can rebuild the same corpus
		seed = rand.Int63n(math.MaxInt64) + 1
	}

	_, span := tracing.GlobalTracer.Start(ctx, "views."+page)
	span.SetAttributes(attribute.Int64("seed", seed))

	opts := b.generatorOptions
	opts.Seed = seed

	b.metricsManager.CounterPageBuilds.WithLabelValues(page).Inc()
	log.Tracef("building page [%s] with seed %d", page, seed)

	return span, mockdata.NewGenerator(opts), seed
}

func (b *Builder) generatePosts(span trace.Span, g *mockdata.Generator, count int) []*mockdata.Post {
	posts := g.Posts(count, nil)
	b.metricsManager.CounterGeneratedPosts.Add(float64(len(posts)))
	b.metricsManager.HistogramCorpusSize.Observe(float64(len(posts)))
	span.SetAttributes(attribute.Int("corpus.size", len(posts)))
	return posts
}

func (b *Builder) Home(ctx context.Context, seed int64) *HomePage {
	span, g, seed := b.startBuild(ctx, "home", seed)
	defer span.End()

	posts := b.generatePosts(span, g, b.feedCorpusSize)

	return &HomePage{
		Seed:          seed,
		Featured:      feed.Limit(feed.Featured(posts), homeFeaturedLimit),
		Trending:      feed.Limit(feed.Trending(posts), homeTrendingLimit),
		Popular:       feed.Limit(feed.Popular(posts), homePopularLimit),
		TopCategories: feed.TopCategories(posts),
	}
}

func (b *Builder) Explore(ctx context.Context, seed int64, params ExploreParams) *ExplorePage {
	span, g, seed := b.startBuild(ctx, "explore", seed)
	defer span.End()

	span.SetAttributes(
		attribute.String("category", params.Category.String()),
		attribute.String("query", params.Query),
		attribute.String("sort", string(params.Sort)),
	)

	posts := b.generatePosts(span, g, b.feedCorpusSize)

	result := posts
	if params.Category != "" {
		result = feed.ByCategory(result, params.Category)
	}
	result = feed.Search(result, params.Query)
	result = feed.Sort(result, params.Sort)

	sortMode := params.Sort
	if sortMode == "" {
		sortMode = feed.SortRecent
	}

	return &ExplorePage{
		Seed:           seed,
		Category:       params.Category,
		Query:          params.Query,
		Sort:           sortMode,
		Posts:          result,
		Total:          len(result),
		CategoryCounts: feed.CategoryCounts(posts),
	}
}

func (b *Builder) ForYou(ctx context.Context, seed int64, params ForYouParams) *ForYouPage {
	span, g, seed := b.startBuild(ctx, "for-you", seed)
	defer span.End()

	posts := b.generatePosts(span, g, b.feedCorpusSize)

	interests := params.Interests
	if len(interests) == 0 {
		interests = g.Interests()
	}

	page := &ForYouPage{
		Seed:      seed,
		Interests: interests,
		Tab:       ForYouTab,
	}

	if params.Tab != "" {
		page.Tab = params.Tab.String()
		page.Posts = feed.ByCategory(posts, params.Tab)
		return page
	}

	page.Posts, page.Fallback = feed.Personalized(posts, interests, g)
	if page.Fallback {
		b.metricsManager.CounterPersonalizedFallbacks.Inc()
		log.Debugf("no posts matched interests %v, serving a random sample", interests)
	}
	span.SetAttributes(attribute.Bool("fallback", page.Fallback))

	return page
}

// Post looks the post up by its slug. Slugs are not unique, the first match wins.
func (b *Builder) Post(ctx context.Context, seed int64, slug string) (*PostPage, error) {
	span, g, seed := b.startBuild(ctx, "post", seed)
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	posts := b.generatePosts(span, g, b.feedCorpusSize)

	post, found := feed.BySlug(posts, slug)
	if !found {
		b.metricsManager.CounterPostLookupsNotFound.Inc()
		return nil, ErrPostNotFound
	}

	return &PostPage{
		Seed:    seed,
		Post:    post,
		Related: feed.Related(posts, post, relatedPostsLimit),
	}, nil
}

func (b *Builder) Profile(ctx context.Context, seed int64) *ProfilePage {
	span, g, seed := b.startBuild(ctx, "profile", seed)
	defer span.End()

	author := g.Author()
	posts := b.generatePosts(span, g, b.profileCorpusSize)

	authoredCount := min(g.IntRange(3, 10), len(posts))
	authored := make([]*mockdata.Post, 0, authoredCount)
	for _, p := range posts[:authoredCount] {
		authored = append(authored, p.WithAuthor(author))
	}

	savedEnd := min(authoredCount+g.IntRange(2, 7), len(posts))

	return &ProfilePage{
		Seed:   seed,
		Author: author,
		Posts:  authored,
		Saved:  append([]*mockdata.Post{}, posts[authoredCount:savedEnd]...),
	}
}
