package views

import (
	"errors"

	"github.com/2beens/modernblog/internal/feed"
	"github.com/2beens/modernblog/internal/mockdata"
)

var ErrPostNotFound = errors.New("post not found")

// ForYouTab is the tab showing the personalized feed, other tabs are category names.
const ForYouTab = "for-you"

type HomePage struct {
	Seed          int64                `json:"seed"`
	Featured      []*mockdata.Post     `json:"featured"`
	Trending      []*mockdata.Post     `json:"trending"`
	Popular       []*mockdata.Post     `json:"popular"`
	TopCategories []feed.CategoryCount `json:"top_categories"`
}

type ExploreParams struct {
	// Category filter, empty for all categories.
	Category mockdata.Category
	Query    string
	Sort     feed.SortMode
}

type ExplorePage struct {
	Seed           int64                `json:"seed"`
	Category       mockdata.Category    `json:"category,omitempty"`
	Query          string               `json:"query,omitempty"`
	Sort           feed.SortMode        `json:"sort"`
	Posts          []*mockdata.Post     `json:"posts"`
	Total          int                  `json:"total"`
	CategoryCounts []feed.CategoryCount `json:"category_counts"`
}

type ForYouParams struct {
	// Interests of the reader; random interests are generated when empty.
	Interests []mockdata.Category
	// Tab is a category, or empty for the personalized feed.
	Tab mockdata.Category
}

type ForYouPage struct {
	Seed      int64               `json:"seed"`
	Interests []mockdata.Category `json:"interests"`
	Tab       string              `json:"tab"`
	Posts     []*mockdata.Post    `json:"posts"`
	// Fallback is set when no post matched the interests and a random sample is shown.
	Fallback bool `json:"fallback"`
}

type PostPage struct {
	Seed    int64            `json:"seed"`
	Post    *mockdata.Post   `json:"post"`
	Related []*mockdata.Post `json:"related"`
}

type ProfilePage struct {
	Seed   int64            `json:"seed"`
	Author *mockdata.Author `json:"author"`
	Posts  []*mockdata.Post `json:"posts"`
	Saved  []*mockdata.Post `json:"saved"`
}
