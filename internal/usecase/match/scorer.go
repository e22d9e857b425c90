package match

import (
	"fmt"
	"strings"

	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/extract"
)

// maxScore is the score clamp ceiling.
const maxScore = 100

// Scorer computes additive, deterministic match scores. It carries no state
// beyond the weight table, so a single Scorer is safe for concurrent use.
type Scorer struct {
	w Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Score computes the 0..100 compatibility between query and item, plus the
// reason string naming the rules that fired. Missing item attributes simply
// contribute nothing; scoring never fails.
func (s *Scorer) Score(q domain.Query, item domain.Item) (int, string) {
	score := 0
	var reasons []string

	if q.WantsCategory(item.Category) {
		score += s.w.Category
		if len(q.Categories) > 0 {
			reasons = append(reasons, fmt.Sprintf("matches the %s you asked for", item.Category))
		}
	}

	if q.Occasion != "" && item.SuitsOccasion(q.Occasion) {
		score += s.w.Occasion
		reasons = append(reasons, fmt.Sprintf("suits a %s occasion", q.Occasion))
	}

	if q.Style != "" && item.HasStyle(q.Style) {
		score += s.w.Style
		reasons = append(reasons, fmt.Sprintf("carries the %s style", q.Style))
	}

	if color, ok := firstColorOverlap(q.Colors, item); ok {
		score += s.w.Color
		reasons = append(reasons, fmt.Sprintf("available in %s", color))
	}

	if q.Anchor != nil && extract.AreComplementary(q.Anchor.Category, item.Category) {
		score += s.w.Complement
		reasons = append(reasons, fmt.Sprintf("pairs well with %s", q.Anchor.Title))
	}

	if item.Rating >= qualityGoodRating {
		score += s.w.QualityGood
		if item.Rating >= qualityGreatRating {
			score += s.w.QualityGreat
		}
		reasons = append(reasons, fmt.Sprintf("rated %.1f by shoppers", item.Rating))
	}

	if score > maxScore {
		score = maxScore
	}

	if len(reasons) == 0 {
		return score, "a versatile piece from our collection"
	}
	return score, capitalize(strings.Join(reasons, ", "))
}

// firstColorOverlap returns the first query color the item carries.
func firstColorOverlap(colors []string, item domain.Item) (string, bool) {
	for _, c := range colors {
		if item.HasColor(c) {
			return strings.ToLower(c), true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
