package chi

import (
	"github.com/styleloom/stylist/internal/domain"
	healthuc "github.com/styleloom/stylist/internal/usecase/health"
)

// ErrorResponseCode is the machine-readable error discriminator.
type ErrorResponseCode string

const (
	// ErrorCodeBadRequest signals a malformed request.
	ErrorCodeBadRequest ErrorResponseCode = "bad_request"
	// ErrorCodeValidationFailed signals a syntactically valid but unusable request.
	ErrorCodeValidationFailed ErrorResponseCode = "validation_failed"
	// ErrorCodeItemNotFound signals an unknown item ID.
	ErrorCodeItemNotFound ErrorResponseCode = "item_not_found"
	// ErrorCodeInternalError signals an unexpected server failure.
	ErrorCodeInternalError ErrorResponseCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// ItemResponse is the wire shape of a catalog item.
type ItemResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Colors    []string `json:"colors,omitempty"`
	Styles    []string `json:"styles,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// ItemListResponse wraps a catalog listing.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// MatchItemResponse is a scored catalog item.
type MatchItemResponse struct {
	Item   ItemResponse `json:"item"`
	Score  int          `json:"score"`
	Reason string       `json:"reason"`
}

// MatchResponse wraps a ranked match result with an optional stylist reply.
type MatchResponse struct {
	Reply   string              `json:"reply,omitempty"`
	Matches []MatchItemResponse `json:"matches"`
}

// ChatMatchRequest is the POST /match/chat body.
type ChatMatchRequest struct {
	Message string `json:"message"`
	Limit   int    `json:"limit,omitempty"`
}

// FiltersMatchRequest is the POST /match/filters body. It carries explicit
// filters from the caller or the output of an external image analysis.
type FiltersMatchRequest struct {
	Categories []string `json:"categories,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Style      string   `json:"style,omitempty"`
	Occasion   string   `json:"occasion,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// OutfitResponse is the wire shape of a curated outfit.
type OutfitResponse struct {
	Items       []ItemResponse `json:"items"`
	Occasion    string         `json:"occasion"`
	Description string         `json:"description"`
	TotalPrice  float64        `json:"total_price"`
	Confidence  int            `json:"confidence"`
}

// OutfitListResponse wraps outfit curation results.
type OutfitListResponse struct {
	Outfits []OutfitResponse `json:"outfits"`
}

// WishlistAddRequest is the POST /wishlist/{userID} body.
type WishlistAddRequest struct {
	ItemID string `json:"item_id"`
}

// WishlistResponse wraps a resolved wishlist.
type WishlistResponse struct {
	Items []ItemResponse `json:"items"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func itemToResponse(it domain.Item) ItemResponse {
	return ItemResponse{
		ID:        it.ID,
		Title:     it.Title,
		Category:  string(it.Category),
		Colors:    it.Colors,
		Styles:    it.Styles,
		Occasions: it.Occasions,
		Price:     it.Price,
		Rating:    it.Rating,
		ImageURL:  it.ImageURL,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = itemToResponse(it)
	}
	return out
}

func scoredToResponse(scored []domain.ScoredItem) []MatchItemResponse {
	out := make([]MatchItemResponse, len(scored))
	for i, s := range scored {
		out[i] = MatchItemResponse{Item: itemToResponse(s.Item), Score: s.Score, Reason: s.Reason}
	}
	return out
}

func outfitToResponse(o domain.Outfit) OutfitResponse {
	return OutfitResponse{
		Items:       itemsToResponse(o.Items),
		Occasion:    o.Occasion,
		Description: o.Description,
		TotalPrice:  o.TotalPrice(),
		Confidence:  o.Confidence(),
	}
}

func healthToResponse(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(r.Status), Checks: checks}
}
