package note

import (
	"fmt"
	"regexp"
	"time"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Limits for note fields.
const (
	MaxIDLength      = 256
	MaxTitleLength   = 512
	MaxPreviewLength = 8192
	MaxTags          = 32
)

// Note is a rankable marketplace listing (immutable value object).
type Note struct {
	id              string
	title           string
	author          string
	category        string
	preview         string
	tags            []string
	price           float64
	rating          float64
	reviewCount     int
	purchaseCount   int
	viewCount       int
	createdAt       time.Time
	verifiedCreator bool
	creatorTrust    float64
}

// New validates and creates a Note.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Title is required. Price must be
// non-negative, rating in [0,5], counters non-negative, creator trust in [0,1].
func New(
	id, title, author, category, preview string,
	tags []string,
	price, rating float64,
	reviewCount, purchaseCount, viewCount int,
	createdAt time.Time,
	verifiedCreator bool,
	creatorTrust float64,
) (Note, error) {
	if id == "" {
		return Note{}, fmt.Errorf("note ID is required")
	}
	if len(id) > MaxIDLength {
		return Note{}, fmt.Errorf("note ID too long (max %d)", MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return Note{}, fmt.Errorf("note ID must be alphanumeric with underscores and hyphens")
	}
	if title == "" {
		return Note{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return Note{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	if len(preview) > MaxPreviewLength {
		return Note{}, fmt.Errorf("preview too long (max %d)", MaxPreviewLength)
	}
	if len(tags) > MaxTags {
		return Note{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}
	if price < 0 {
		return Note{}, fmt.Errorf("price must be non-negative")
	}
	if rating < 0 || rating > 5 {
		return Note{}, fmt.Errorf("rating must be between 0 and 5")
	}
	if reviewCount < 0 || purchaseCount < 0 || viewCount < 0 {
		return Note{}, fmt.Errorf("counters must be non-negative")
	}
	if creatorTrust < 0 || creatorTrust > 1 {
		return Note{}, fmt.Errorf("creator trust must be between 0 and 1")
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return Note{
		id:              id,
		title:           title,
		author:          author,
		category:        category,
		preview:         preview,
		tags:            cloneTags(tags),
		price:           price,
		rating:          rating,
		reviewCount:     reviewCount,
		purchaseCount:   purchaseCount,
		viewCount:       viewCount,
		createdAt:       createdAt.UTC(),
		verifiedCreator: verifiedCreator,
		creatorTrust:    creatorTrust,
	}, nil
}

// Reconstruct creates a Note without validation (storage hydration).
func Reconstruct(
	id, title, author, category, preview string,
	tags []string,
	price, rating float64,
	reviewCount, purchaseCount, viewCount int,
	createdAt time.Time,
	verifiedCreator bool,
	creatorTrust float64,
) Note {
	return Note{
		id: id, title: title, author: author, category: category, preview: preview,
		tags: tags, price: price, rating: rating,
		reviewCount: reviewCount, purchaseCount: purchaseCount, viewCount: viewCount,
		createdAt: createdAt, verifiedCreator: verifiedCreator, creatorTrust: creatorTrust,
	}
}

// ID returns the note identifier.
func (n *Note) ID() string { return n.id }

// Title returns the listing title.
func (n *Note) Title() string { return n.title }

// Author returns the creator display name.
func (n *Note) Author() string { return n.author }

// Category returns the listing category.
func (n *Note) Category() string { return n.category }

// Preview returns the free-text preview snippet.
func (n *Note) Preview() string { return n.preview }

// Tags returns the listing tags.
func (n *Note) Tags() []string { return n.tags }

// Price returns the listing price.
func (n *Note) Price() float64 { return n.price }

// Rating returns the average review rating in [0,5].
func (n *Note) Rating() float64 { return n.rating }

// ReviewCount returns the number of reviews behind the rating.
func (n *Note) ReviewCount() int { return n.reviewCount }

// PurchaseCount returns the purchase counter.
func (n *Note) PurchaseCount() int { return n.purchaseCount }

// ViewCount returns the view counter.
func (n *Note) ViewCount() int { return n.viewCount }

// CreatedAt returns the creation timestamp.
func (n *Note) CreatedAt() time.Time { return n.createdAt }

// VerifiedCreator reports whether the creator is verified.
func (n *Note) VerifiedCreator() bool { return n.verifiedCreator }

// CreatorTrust returns the creator trust score in [0,1].
func (n *Note) CreatorTrust() float64 { return n.creatorTrust }

// AgeInDays returns the whole days elapsed since creation, relative to now.
// Never negative: notes dated in the future count as age zero.
func (n *Note) AgeInDays(now time.Time) int {
	age := int(now.Sub(n.createdAt).Hours() / 24)
	if age < 0 {
		return 0
	}
	return age
}

// WithCounters returns a copy with live engagement counters applied.
// Used to overlay telemetry-store values onto the stored listing.
func (n *Note) WithCounters(purchases, views int) Note {
	c := *n
	if purchases >= 0 {
		c.purchaseCount = purchases
	}
	if views >= 0 {
		c.viewCount = views
	}
	return c
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	c := make([]string, len(tags))
	copy(c, tags)
	return c
}
