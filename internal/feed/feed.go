// Package feed derives feeds from an in-memory corpus of posts.
// None of the functions modify the posts slice they are given.
package feed

import (
	"sort"
	"strings"

	"github.com/2beens/modernblog/internal/mockdata"
)

const (
	topCategoriesLimit   = 5
	personalizedFallback = 5
)

type CategoryCount struct {
	Category mockdata.Category `json:"category"`
	Count    int               `json:"count"`
}

// Sampler draws up to n random posts from the given ones.
type Sampler interface {
	SamplePosts(posts []*mockdata.Post, n int) []*mockdata.Post
}

func filter(posts []*mockdata.Post, keep func(p *mockdata.Post) bool) []*mockdata.Post {
	filtered := []*mockdata.Post{}
	for _, p := range posts {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func clone(posts []*mockdata.Post) []*mockdata.Post {
	cp := make([]*mockdata.Post, len(posts))
	copy(cp, posts)
	return cp
}

func ByCategory(posts []*mockdata.Post, category mockdata.Category) []*mockdata.Post {
	return filter(posts, func(p *mockdata.Post) bool {
		return p.Category == category
	})
}

func Trending(posts []*mockdata.Post) []*mockdata.Post {
	return filter(posts, func(p *mockdata.Post) bool {
		return p.Trending
	})
}

func Featured(posts []*mockdata.Post) []*mockdata.Post {
	return filter(posts, func(p *mockdata.Post) bool {
		return p.Featured
	})
}

// Popular returns the posts ordered by views, most viewed first.
func Popular(posts []*mockdata.Post) []*mockdata.Post {
	sorted := clone(posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	return sorted
}

// Recent returns the posts ordered by publish date, newest first.
func Recent(posts []*mockdata.Post) []*mockdata.Post {
	sorted := clone(posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishDate.After(sorted[j].PublishDate)
	})
	return sorted
}

// TopCategories counts posts per category and returns the 5 most used ones.
// Categories without posts are left out.
func TopCategories(posts []*mockdata.Post) []CategoryCount {
	counts := make(map[mockdata.Category]int)
	var order []mockdata.Category
	for _, p := range posts {
		if _, ok := counts[p.Category]; !ok {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	top := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		top = append(top, CategoryCount{Category: c, Count: counts[c]})
	}
	// ties keep the order in which categories first appear
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})

	if len(top) > topCategoriesLimit {
		top = top[:topCategoriesLimit]
	}
	return top
}

// CategoryCounts returns the number of posts for each known category, including
// the ones with no posts, in the canonical category order.
func CategoryCounts(posts []*mockdata.Post) []CategoryCount {
	counts := make(map[mockdata.Category]int)
	for _, p := range posts {
		counts[p.Category]++
	}

	categories := mockdata.Categories()
	result := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryCount{Category: c, Count: counts[c]})
	}
	return result
}

// Personalized is a plain interest filter: it keeps the posts whose category is one
// of the reader interests. When nothing matches, a random sample of 5 posts is
// returned instead, so the feed is never empty while there are posts at all.
// The second return value reports whether the fallback sample was used.
func Personalized(
	posts []*mockdata.Post,
	interests []mockdata.Category,
	sampler Sampler,
) ([]*mockdata.Post, bool) {
	wanted := make(map[mockdata.Category]bool, len(interests))
	for _, c := range interests {
		wanted[c] = true
	}

	matching := filter(posts, func(p *mockdata.Post) bool {
		return wanted[p.Category]
	})
	if len(matching) > 0 {
		return matching, false
	}

	return sampler.SamplePosts(posts, personalizedFallback), true
}

// Related returns up to limit posts from the same category as the given post,
// excluding the post itself.
func Related(posts []*mockdata.Post, post *mockdata.Post, limit int) []*mockdata.Post {
	related := filter(posts, func(p *mockdata.Post) bool {
		return p.ID != post.ID && p.Category == post.Category
	})
	return Limit(related, limit)
}

// BySlug returns the first post with the given slug.
func BySlug(posts []*mockdata.Post, slug string) (*mockdata.Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}

// Search keeps the posts whose title, excerpt, author name or one of the tags
// contain the query, ignoring case. An empty query keeps all posts.
func Search(posts []*mockdata.Post, query string) []*mockdata.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clone(posts)
	}

	return filter(posts, func(p *mockdata.Post) bool {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Excerpt), query) {
			return true
		}
		if p.Author != nil && strings.Contains(strings.ToLower(p.Author.Name), query) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				return true
			}
		}
		return false
	})
}

// Limit returns at most the first n posts.
func Limit(posts []*mockdata.Post, n int) []*mockdata.Post {
	if n < 0 {
		n = 0
	}
	if len(posts) > n {
		return clone(posts[:n])
	}
	return clone(posts)
}
