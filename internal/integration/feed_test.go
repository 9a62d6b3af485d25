//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/2beens/modernblog/internal/misc"
	"github.com/2beens/modernblog/internal/views"
)

func (s *FeedTestSuite) get(ctx context.Context, url, clientIP string) *http.Response {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *FeedTestSuite) getJSON(ctx context.Context, path, clientIP string, target any) {
	resp := s.get(ctx, serverEndpoint+path, clientIP)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, path)
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(target))
}

func (s *FeedTestSuite) TestHealth() {
	var health misc.HealthResponse
	s.getJSON(context.Background(), "/health", "10.1.0.1", &health)
	s.Equal("ok", health.Status)
	s.Equal("ok", health.Redis)
	s.Equal("test-version-info", health.Version)
}

func (s *FeedTestSuite) TestHomeThenPost() {
	ctx := context.Background()

	var home views.HomePage
	s.getJSON(ctx, "/feed/home?seed=31337", "10.1.0.2", &home)
	s.Equal(int64(31337), home.Seed)
	s.Require().NotEmpty(home.Popular)

	var postPage views.PostPage
	s.getJSON(ctx, "/feed/post/"+home.Popular[0].Slug+"?seed=31337", "10.1.0.2", &postPage)
	s.Require().NotNil(postPage.Post)
	s.Equal(home.Popular[0].Title, postPage.Post.Title)

	resp := s.get(ctx, serverEndpoint+"/feed/post/no-such-post?seed=31337", "10.1.0.2")
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *FeedTestSuite) TestExploreAndForYou() {
	ctx := context.Background()

	var explore views.ExplorePage
	s.getJSON(ctx, "/feed/explore?seed=5&sort=popular", "10.1.0.3", &explore)
	s.Equal(explore.Total, len(explore.Posts))
	total := 0
	for _, cc := range explore.CategoryCounts {
		total += cc.Count
	}
	s.Equal(views.DefaultFeedCorpusSize, total)

	var forYou views.ForYouPage
	s.getJSON(ctx, "/feed/for-you?seed=5&interests=technology,food", "10.1.0.3", &forYou)
	s.NotEmpty(forYou.Posts)
	s.Len(forYou.Interests, 2)
}

func (s *FeedTestSuite) TestRateLimiting() {
	ctx := context.Background()
	clientIP := "10.2.0.1"

	limited := 0
	for i := 0; i < rateLimitAllowedPerMin+5; i++ {
		resp := s.get(ctx, serverEndpoint+"/feed/categories", clientIP)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
			s.NotEmpty(resp.Header.Get("Retry-After"))
		}
	}
	s.Equal(5, limited)

	// other clients are not affected
	resp := s.get(ctx, serverEndpoint+"/feed/categories", "10.2.0.2")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *FeedTestSuite) TestMetrics() {
	ctx := context.Background()

	var home views.HomePage
	s.getJSON(ctx, "/feed/home", "10.3.0.1", &home)
	s.NotZero(home.Seed)

	resp := s.get(ctx, fmt.Sprintf("%s/metrics", metricsEndpoint), "")
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), `modernblog_main_page_builds{page="home"}`)
	s.Contains(string(body), "modernblog_main_generated_posts")
}
