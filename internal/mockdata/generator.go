package mockdata

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	DefaultFeaturedProbability = 0.2
	DefaultTrendingProbability = 0.3
	DefaultRecentWindow        = 60 * 24 * time.Hour

	// authors generated for a batch of posts when no author pool is given
	maxGeneratedAuthorPool = 5

	socialLinkProbability = 0.5
	authorJoinWindowYears = 2
)

var usernameStripRegex = regexp.MustCompile(`[^a-z0-9._]+`)

type GeneratorOptions struct {
	// Seed of the random source, 0 picks a random seed.
	Seed                int64
	FeaturedProbability float64
	TrendingProbability float64
	// RecentWindow bounds how far in the past posts get published.
	RecentWindow time.Duration
	Now          func() time.Time
}

func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		FeaturedProbability: DefaultFeaturedProbability,
		TrendingProbability: DefaultTrendingProbability,
		RecentWindow:        DefaultRecentWindow,
		Now:                 time.Now,
	}
}

// Generator produces synthetic authors and posts from its own random source.
// It is meant to be created per corpus and not shared between goroutines.
type Generator struct {
	faker               *gofakeit.Faker
	featuredProbability float64
	trendingProbability float64
	recentWindow        time.Duration
	now                 time.Time
}

func NewGenerator(opts GeneratorOptions) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = DefaultRecentWindow
	}
	return &Generator{
		faker:               gofakeit.New(opts.Seed),
		featuredProbability: clampProbability(opts.FeaturedProbability),
		trendingProbability: clampProbability(opts.TrendingProbability),
		recentWindow:        opts.RecentWindow,
		// one reference time per corpus, so all dates are consistent with each other
		now: opts.Now(),
	}
}

func (g *Generator) Author() *Author {
	f := g.faker
	firstName := f.FirstName()
	lastName := f.LastName()

	author := &Author{
		ID:        f.UUID(),
		Name:      fmt.Sprintf("%s %s", firstName, lastName),
		Username:  g.username(firstName, lastName),
		Email:     g.email(firstName, lastName),
		Avatar:    fmt.Sprintf("/placeholder.svg?height=300&width=300&text=%s%s", initial(firstName), initial(lastName)),
		Bio:       f.Paragraph(1, f.Number(2, 4), f.Number(8, 14), " "),
		JoinDate:  f.DateRange(g.now.AddDate(-authorJoinWindowYears, 0, 0), g.now.Add(-time.Minute)),
		Followers: f.Number(0, 10000),
		Following: f.Number(0, 500),
	}

	if g.chance(socialLinkProbability) {
		author.SocialLinks.Twitter = "https://twitter.com/" + f.Username()
	}
	if g.chance(socialLinkProbability) {
		author.SocialLinks.LinkedIn = "https://linkedin.com/in/" + f.Username()
	}
	if g.chance(socialLinkProbability) {
		author.SocialLinks.GitHub = "https://github.com/" + f.Username()
	}
	if g.chance(socialLinkProbability) {
		author.SocialLinks.Website = f.URL()
	}

	return author
}

func (g *Generator) Authors(count int) []*Author {
	authors := make([]*Author, 0, max(count, 0))
	for i := 0; i < count; i++ {
		authors = append(authors, g.Author())
	}
	return authors
}

// Post generates a single post. When author is nil, a new author is generated for it.
func (g *Generator) Post(author *Author) *Post {
	f := g.faker
	if author == nil {
		author = g.Author()
	}

	title := strings.TrimSpace(f.Sentence(f.Number(4, 10)))

	paragraphs := make([]string, f.Number(5, 10))
	for i := range paragraphs {
		paragraphs[i] = f.Paragraph(1, f.Number(3, 8), f.Number(8, 16), " ")
	}

	tags := make([]string, f.Number(1, 5))
	for i := range tags {
		tags[i] = strings.ToLower(f.Word())
	}

	width := f.Number(800, 1200)
	height := f.Number(400, 600)

	return &Post{
		ID:      f.UUID(),
		Title:   title,
		Slug:    Slugify(title),
		Excerpt: f.Paragraph(1, f.Number(2, 4), f.Number(8, 14), " "),
		Content: paragraphs,
		CoverImage: CoverImage{
			URL:    fmt.Sprintf("/placeholder.svg?height=%d&width=%d", height, width),
			Width:  width,
			Height: height,
		},
		Author:      author,
		Category:    allCategories[f.Number(0, len(allCategories)-1)],
		Tags:        tags,
		PublishDate: f.DateRange(g.now.Add(-g.recentWindow), g.now),
		ReadTime:    f.Number(2, 15),
		Views:       f.Number(10, 10000),
		Likes:       f.Number(0, 500),
		Comments:    f.Number(0, 100),
		Featured:    g.chance(g.featuredProbability),
		Trending:    g.chance(g.trendingProbability),
	}
}

// Posts generates count posts, each written by a random author from the given pool.
// With an empty pool, min(count, 5) authors are generated and shared between the posts.
func (g *Generator) Posts(count int, authors []*Author) []*Post {
	if count <= 0 {
		return []*Post{}
	}
	if len(authors) == 0 {
		authors = g.Authors(min(count, maxGeneratedAuthorPool))
	}

	posts := make([]*Post, 0, count)
	for i := 0; i < count; i++ {
		author := authors[g.faker.Number(0, len(authors)-1)]
		posts = append(posts, g.Post(author))
	}
	return posts
}

// Interests picks 2 to 5 distinct categories, modelling the declared interests of a reader.
func (g *Generator) Interests() []Category {
	count := g.faker.Number(2, 5)
	interests := make([]Category, 0, count)
	for _, i := range g.faker.Rand.Perm(len(allCategories))[:count] {
		interests = append(interests, allCategories[i])
	}
	return interests
}

// SamplePosts draws up to n distinct posts from the given ones, in random order.
func (g *Generator) SamplePosts(posts []*Post, n int) []*Post {
	n = min(max(n, 0), len(posts))
	sample := make([]*Post, 0, n)
	for _, i := range g.faker.Rand.Perm(len(posts))[:n] {
		sample = append(sample, posts[i])
	}
	return sample
}

// IntRange returns a random number in [low, high].
func (g *Generator) IntRange(low, high int) int {
	return g.faker.Number(low, high)
}

// Now is the reference time all dates of this generator are relative to.
func (g *Generator) Now() time.Time {
	return g.now
}

func (g *Generator) chance(probability float64) bool {
	return g.faker.Rand.Float64() < probability
}

func (g *Generator) username(firstName, lastName string) string {
	separators := []string{"", ".", "_"}
	username := strings.ToLower(firstName) +
		separators[g.faker.Number(0, len(separators)-1)] +
		strings.ToLower(lastName)
	if g.chance(0.5) {
		username += fmt.Sprintf("%d", g.faker.Number(1, 99))
	}
	return usernameStripRegex.ReplaceAllString(username, "")
}

func (g *Generator) email(firstName, lastName string) string {
	local := usernameStripRegex.ReplaceAllString(
		strings.ToLower(firstName)+"."+strings.ToLower(lastName),
		"",
	)
	return local + "@" + g.faker.DomainName()
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
