package views_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/modernblog/internal/feed"
	"github.com/2beens/modernblog/internal/mockdata"
	"github.com/2beens/modernblog/internal/telemetry/metrics"
	"github.com/2beens/modernblog/internal/views"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestBuilder(feedCorpusSize int) (*views.Builder, *metrics.Manager) {
	opts := mockdata.DefaultGeneratorOptions()
	opts.Now = func() time.Time { return testNow }
	metricsManager := metrics.NewTestManager()
	return views.NewBuilder(views.BuilderParams{
		GeneratorOptions: opts,
		FeedCorpusSize:   feedCorpusSize,
		MetricsManager:   metricsManager,
	}), metricsManager
}

func TestBuilder_Home(t *testing.T) {
	b, metricsManager := newTestBuilder(0)

	page := b.Home(context.Background(), 42)
	require.NotNil(t, page)
	assert.Equal(t, int64(42), page.Seed)

	assert.LessOrEqual(t, len(page.Featured), 3)
	for _, p := range page.Featured {
		assert.True(t, p.Featured)
	}
	assert.LessOrEqual(t, len(page.Trending), 4)
	for _, p := range page.Trending {
		assert.True(t, p.Trending)
	}

	require.Len(t, page.Popular, 6)
	for i := 1; i < len(page.Popular); i++ {
		assert.GreaterOrEqual(t, page.Popular[i-1].Views, page.Popular[i].Views)
	}

	require.NotEmpty(t, page.TopCategories)
	assert.LessOrEqual(t, len(page.TopCategories), 5)
	for i := 1; i < len(page.TopCategories); i++ {
		assert.GreaterOrEqual(t, page.TopCategories[i-1].Count, page.TopCategories[i].Count)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPageBuilds.WithLabelValues("home")))
	assert.Equal(t, float64(views.DefaultFeedCorpusSize), testutil.ToFloat64(metricsManager.CounterGeneratedPosts))
}

func TestBuilder_Deterministic(t *testing.T) {
	b, _ := newTestBuilder(0)
	ctx := context.Background()

	assert.Equal(t, b.Home(ctx, 7), b.Home(ctx, 7))
	assert.Equal(t, b.Profile(ctx, 7), b.Profile(ctx, 7))
	assert.Equal(t,
		b.Explore(ctx, 7, views.ExploreParams{Sort: feed.SortPopular}),
		b.Explore(ctx, 7, views.ExploreParams{Sort: feed.SortPopular}),
	)

	assert.NotEqual(t, b.Home(ctx, 7).Popular[0].ID, b.Home(ctx, 8).Popular[0].ID)
}

func TestBuilder_RandomSeedIsReported(t *testing.T) {
	b, _ := newTestBuilder(0)
	ctx := context.Background()

	page := b.Home(ctx, 0)
	require.NotNil(t, page)
	assert.NotZero(t, page.Seed)

	// the reported seed rebuilds the same page
	assert.Equal(t, page, b.Home(ctx, page.Seed))
}

func TestBuilder_ConfiguredSeed(t *testing.T) {
	opts := mockdata.DefaultGeneratorOptions()
	opts.Seed = 1234
	opts.Now = func() time.Time { return testNow }
	b := views.NewBuilder(views.BuilderParams{
		GeneratorOptions: opts,
		MetricsManager:   metrics.NewTestManager(),
	})

	ctx := context.Background()
	page := b.Home(ctx, 0)
	assert.Equal(t, int64(1234), page.Seed)
	assert.Equal(t, page, b.Home(ctx, 1234))
	assert.Equal(t, int64(99), b.Home(ctx, 99).Seed)
}

func TestBuilder_Explore(t *testing.T) {
	b, _ := newTestBuilder(0)
	ctx := context.Background()

	t.Run("all posts", func(t *testing.T) {
		page := b.Explore(ctx, 5, views.ExploreParams{})
		assert.Equal(t, feed.SortRecent, page.Sort)
		assert.Len(t, page.Posts, views.DefaultFeedCorpusSize)
		assert.Equal(t, len(page.Posts), page.Total)
		for i := 1; i < len(page.Posts); i++ {
			assert.False(t, page.Posts[i-1].PublishDate.Before(page.Posts[i].PublishDate))
		}

		require.Len(t, page.CategoryCounts, len(mockdata.Categories()))
		total := 0
		for i, cc := range page.CategoryCounts {
			assert.Equal(t, mockdata.Categories()[i], cc.Category)
			total += cc.Count
		}
		assert.Equal(t, views.DefaultFeedCorpusSize, total)
	})

	t.Run("category filter", func(t *testing.T) {
		all := b.Explore(ctx, 5, views.ExploreParams{})
		category := all.Posts[0].Category

		page := b.Explore(ctx, 5, views.ExploreParams{Category: category, Sort: feed.SortPopular})
		require.NotEmpty(t, page.Posts)
		assert.Equal(t, category, page.Category)
		for _, p := range page.Posts {
			assert.Equal(t, category, p.Category)
		}
		for i := 1; i < len(page.Posts); i++ {
			assert.GreaterOrEqual(t, page.Posts[i-1].Views, page.Posts[i].Views)
		}
		// counts are always computed over the whole corpus
		assert.Equal(t, all.CategoryCounts, page.CategoryCounts)
	})

	t.Run("query", func(t *testing.T) {
		all := b.Explore(ctx, 5, views.ExploreParams{})
		tag := all.Posts[3].Tags[0]

		page := b.Explore(ctx, 5, views.ExploreParams{Query: tag})
		require.NotEmpty(t, page.Posts)
		ids := make([]string, 0, len(page.Posts))
		for _, p := range page.Posts {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, all.Posts[3].ID)

		none := b.Explore(ctx, 5, views.ExploreParams{Query: "zzqqxx-no-such-thing"})
		assert.Empty(t, none.Posts)
		assert.Zero(t, none.Total)
	})

	t.Run("featured only", func(t *testing.T) {
		page := b.Explore(ctx, 5, views.ExploreParams{Sort: feed.SortFeatured})
		for _, p := range page.Posts {
			assert.True(t, p.Featured)
		}
	})
}

func TestBuilder_ForYou(t *testing.T) {
	b, metricsManager := newTestBuilder(3)
	ctx := context.Background()

	corpus := b.Explore(ctx, 21, views.ExploreParams{})
	var present, absent []mockdata.Category
	for _, cc := range corpus.CategoryCounts {
		if cc.Count > 0 {
			present = append(present, cc.Category)
		} else {
			absent = append(absent, cc.Category)
		}
	}
	require.NotEmpty(t, present)
	require.NotEmpty(t, absent)

	t.Run("matching interests", func(t *testing.T) {
		page := b.ForYou(ctx, 21, views.ForYouParams{Interests: present})
		assert.False(t, page.Fallback)
		assert.Equal(t, views.ForYouTab, page.Tab)
		assert.Len(t, page.Posts, 3)
	})

	t.Run("fallback", func(t *testing.T) {
		page := b.ForYou(ctx, 21, views.ForYouParams{Interests: absent[:1]})
		assert.True(t, page.Fallback)
		assert.Equal(t, absent[:1], page.Interests)
		// the corpus only has 3 posts, the sample is capped by it
		assert.Len(t, page.Posts, 3)
		assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPersonalizedFallbacks))
	})

	t.Run("category tab", func(t *testing.T) {
		page := b.ForYou(ctx, 21, views.ForYouParams{Tab: present[0]})
		assert.Equal(t, present[0].String(), page.Tab)
		assert.False(t, page.Fallback)
		require.NotEmpty(t, page.Posts)
		for _, p := range page.Posts {
			assert.Equal(t, present[0], p.Category)
		}
	})

	t.Run("generated interests", func(t *testing.T) {
		page := b.ForYou(ctx, 21, views.ForYouParams{})
		assert.GreaterOrEqual(t, len(page.Interests), 2)
		assert.LessOrEqual(t, len(page.Interests), 5)
		assert.NotEmpty(t, page.Posts)
	})
}

func TestBuilder_Post(t *testing.T) {
	b, metricsManager := newTestBuilder(0)
	ctx := context.Background()

	home := b.Home(ctx, 77)
	wanted := home.Popular[0]

	page, err := b.Post(ctx, 77, wanted.Slug)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(77), page.Seed)
	assert.Equal(t, wanted.Slug, page.Post.Slug)
	assert.Equal(t, wanted.Title, page.Post.Title)

	assert.LessOrEqual(t, len(page.Related), 3)
	for _, p := range page.Related {
		assert.NotEqual(t, page.Post.ID, p.ID)
		assert.Equal(t, page.Post.Category, p.Category)
	}

	page, err = b.Post(ctx, 77, "this-slug-does-not-exist")
	assert.ErrorIs(t, err, views.ErrPostNotFound)
	assert.Nil(t, page)
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPostLookupsNotFound))
}

func TestBuilder_Profile(t *testing.T) {
	b, _ := newTestBuilder(0)

	for seed := int64(1); seed <= 20; seed++ {
		page := b.Profile(context.Background(), seed)
		require.NotNil(t, page)
		require.NotNil(t, page.Author)

		assert.GreaterOrEqual(t, len(page.Posts), 3)
		assert.LessOrEqual(t, len(page.Posts), 10)
		assert.GreaterOrEqual(t, len(page.Saved), 2)
		assert.LessOrEqual(t, len(page.Saved), 7)

		authored := make(map[string]bool, len(page.Posts))
		for _, p := range page.Posts {
			require.NotNil(t, p.Author)
			assert.Equal(t, page.Author.ID, p.Author.ID)
			authored[p.ID] = true
		}
		for _, p := range page.Saved {
			assert.False(t, authored[p.ID], "saved post %s is also authored", p.ID)
		}
	}
}

func TestBuilder_CorpusSizeHistogram(t *testing.T) {
	opts := mockdata.DefaultGeneratorOptions()
	opts.Now = func() time.Time { return testNow }
	metricsManager, reg := metrics.NewTestManagerAndRegistry()
	b := views.NewBuilder(views.BuilderParams{
		GeneratorOptions:  opts,
		FeedCorpusSize:    12,
		ProfileCorpusSize: 15,
		MetricsManager:    metricsManager,
	})

	ctx := context.Background()
	b.Home(ctx, 1)
	b.Profile(ctx, 1)

	families, err := reg.Gather()
	require.NoError(t, err)

	var histogram *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "modernblog_test_server_corpus_size" {
			require.Len(t, mf.GetMetric(), 1)
			histogram = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, histogram)
	assert.Equal(t, uint64(2), histogram.GetSampleCount())
	assert.Equal(t, 27.0, histogram.GetSampleSum())
	assert.Equal(t, 27.0, testutil.ToFloat64(metricsManager.CounterGeneratedPosts))
}
