package feed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/modernblog/internal/mockdata"
)

var ErrUnknownSortMode = errors.New("unknown sort mode")

type SortMode string

const (
	SortRecent   SortMode = "recent"
	SortPopular  SortMode = "popular"
	SortTrending SortMode = "trending"
	SortFeatured SortMode = "featured"
)

// ParseSortMode parses the given mode, an empty value defaults to SortRecent.
func ParseSortMode(mode string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(mode))) {
	case "", SortRecent:
		return SortRecent, nil
	case SortPopular:
		return SortPopular, nil
	case SortTrending:
		return SortTrending, nil
	case SortFeatured:
		return SortFeatured, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortMode, mode)
	}
}

// Sort applies the explore view ordering. Trending and featured narrow the posts
// down to the flagged ones and keep their order.
func Sort(posts []*mockdata.Post, mode SortMode) []*mockdata.Post {
	switch mode {
	case SortPopular:
		return Popular(posts)
	case SortTrending:
		return Trending(posts)
	case SortFeatured:
		return Featured(posts)
	default:
		return Recent(posts)
	}
}
