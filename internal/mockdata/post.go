package mockdata

import (
	"regexp"
	"strings"
	"time"
)

// ParagraphDelimiter separates post content paragraphs when rendered as a single body.
const ParagraphDelimiter = "\n\n"

type CoverImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     []string   `json:"content"` // paragraphs
	CoverImage  CoverImage `json:"cover_image"`
	Author      *Author    `json:"author"`
	Category    Category   `json:"category"`
	Tags        []string   `json:"tags"`
	PublishDate time.Time  `json:"publish_date"`
	ReadTime    int        `json:"read_time"` // minutes
	Views       int        `json:"views"`
	Likes       int        `json:"likes"`
	Comments    int        `json:"comments"`
	Featured    bool       `json:"featured"`
	Trending    bool       `json:"trending"`
}

func (p *Post) Body() string {
	return strings.Join(p.Content, ParagraphDelimiter)
}

// WithAuthor returns a shallow copy of the post attributed to the given author.
func (p *Post) WithAuthor(author *Author) *Post {
	cp := *p
	cp.Author = author
	return &cp
}

var (
	slugStripRegex = regexp.MustCompile(`[^a-z0-9\s]+`)
	slugSpaceRegex = regexp.MustCompile(`\s+`)
)

// Slugify derives the URL slug of a post title: lower-cased, everything except
// ASCII letters, digits and whitespace removed, whitespace runs replaced by a hyphen.
// Slugs are not de-duplicated, two titles can map to the same slug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	return slugSpaceRegex.ReplaceAllString(slug, "-")
}
