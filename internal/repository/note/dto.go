package note

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	domnote "github.com/inkwell-market/noterank/internal/domain/note"
)

// noteToHash converts a domain Note to a map for HSET.
func noteToHash(n *domnote.Note) (map[string]string, error) {
	tagsJSON, err := json.Marshal(n.Tags())
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return map[string]string{
		"id":               n.ID(),
		"title":            n.Title(),
		"author":           n.Author(),
		"category":         n.Category(),
		"preview":          n.Preview(),
		"tags_json":        string(tagsJSON),
		"price":            strconv.FormatFloat(n.Price(), 'f', -1, 64),
		"rating":           strconv.FormatFloat(n.Rating(), 'f', -1, 64),
		"review_count":     strconv.Itoa(n.ReviewCount()),
		"purchase_count":   strconv.Itoa(n.PurchaseCount()),
		"view_count":       strconv.Itoa(n.ViewCount()),
		"created_at":       strconv.FormatInt(n.CreatedAt().Unix(), 10),
		"verified_creator": strconv.FormatBool(n.VerifiedCreator()),
		"creator_trust":    strconv.FormatFloat(n.CreatorTrust(), 'f', -1, 64),
	}, nil
}

// noteFromHash hydrates a domain Note from an HGETALL result map.
func noteFromHash(id string, m map[string]string) (domnote.Note, error) {
	if v, ok := m["id"]; ok && v != "" {
		id = v
	}

	var tags []string
	if tagsJSON := m["tags_json"]; tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return domnote.Note{}, fmt.Errorf("unmarshal tags for %s: %w", id, err)
		}
	}

	price, err := parseFloat(m, "price")
	if err != nil {
		return domnote.Note{}, fmt.Errorf("note %s: %w", id, err)
	}
	rating, err := parseFloat(m, "rating")
	if err != nil {
		return domnote.Note{}, fmt.Errorf("note %s: %w", id, err)
	}
	trust, err := parseFloat(m, "creator_trust")
	if err != nil {
		return domnote.Note{}, fmt.Errorf("note %s: %w", id, err)
	}

	createdAt := time.Time{}
	if v := m["created_at"]; v != "" {
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return domnote.Note{}, fmt.Errorf("note %s: invalid created_at: %w", id, err)
		}
		createdAt = time.Unix(sec, 0).UTC()
	}

	return domnote.Reconstruct(
		id, m["title"], m["author"], m["category"], m["preview"],
		tags, price, rating,
		parseInt(m, "review_count"),
		parseInt(m, "purchase_count"),
		parseInt(m, "view_count"),
		createdAt,
		m["verified_creator"] == "true",
		trust,
	), nil
}

func parseFloat(m map[string]string, field string) (float64, error) {
	v := m[field]
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, v, err)
	}
	return f, nil
}

// parseInt is lenient: malformed counters degrade to zero rather than
// failing the whole listing.
func parseInt(m map[string]string, field string) int {
	n, err := strconv.Atoi(m[field])
	if err != nil {
		return 0
	}
	return n
}
