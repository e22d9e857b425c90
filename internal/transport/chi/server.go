// Package chi exposes the stylist services over HTTP with hand-written
// handlers on a go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/styleloom/stylist/internal/domain"
	healthuc "github.com/styleloom/stylist/internal/usecase/health"
	matchuc "github.com/styleloom/stylist/internal/usecase/match"
	outfituc "github.com/styleloom/stylist/internal/usecase/outfit"
	wishlistuc "github.com/styleloom/stylist/internal/usecase/wishlist"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// CatalogReader is the catalog surface the HTTP layer needs.
type CatalogReader interface {
	GetAll() []domain.Item
	GetByID(id string) (domain.Item, error)
}

// Config tunes per-request defaults.
type Config struct {
	// DefaultLimit caps match results when the caller sends none.
	DefaultLimit int
	// OutfitCount is the default number of curated outfits.
	OutfitCount int
}

// Server holds the HTTP handlers for the stylist API.
type Server struct {
	cfg           Config
	catalog       CatalogReader
	matches       *matchuc.Service
	outfits       *outfituc.Service
	wishlists     *wishlistuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	cfg Config,
	catalog CatalogReader,
	matches *matchuc.Service,
	outfits *outfituc.Service,
	wishlists *wishlistuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		catalog:   catalog,
		matches:   matches,
		outfits:   outfits,
		wishlists: wishlists,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, ErrorCodeItemNotFound),
		sentinelHandler(domain.ErrInvalidItem, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrUnknownRequest, http.StatusBadRequest, ErrorCodeBadRequest),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chirouter.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chirouter.Router) {
		r.Get("/items", s.ListItems)
		r.Get("/items/{itemID}", s.GetItem)
		r.Get("/items/{itemID}/similar", s.SimilarItems)
		r.Get("/match/occasion/{occasion}", s.MatchOccasion)
		r.Post("/match/chat", s.MatchChat)
		r.Post("/match/filters", s.MatchFilters)
		r.Get("/occasions/{occasion}/outfits", s.CurateOutfits)
		r.Route("/wishlist/{userID}", func(r chirouter.Router) {
			r.Get("/", s.GetWishlist)
			r.Post("/", s.AddWishlistItem)
			r.Delete("/items/{itemID}", s.RemoveWishlistItem)
			r.Get("/items/{itemID}/pairings", s.WishlistPairings)
		})
	})
}

// ListItems handles GET /items. Optional category and occasion query
// params filter the listing; unknown values simply match nothing.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(r.URL.Query().Get("category"))
	occasion := r.URL.Query().Get("occasion")

	all := s.catalog.GetAll()
	items := make([]domain.Item, 0, len(all))
	for _, it := range all {
		if category != "" && string(it.Category) != category {
			continue
		}
		if occasion != "" && !it.SuitsOccasion(occasion) {
			continue
		}
		items = append(items, it)
	}

	writeJSON(w, http.StatusOK, ItemListResponse{Items: itemsToResponse(items), Total: len(items)})
}

// GetItem handles GET /items/{itemID}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.catalog.GetByID(chirouter.URLParam(r, "itemID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(item))
}

// SimilarItems handles GET /items/{itemID}/similar.
func (s *Server) SimilarItems(w http.ResponseWriter, r *http.Request) {
	limit := s.parseLimit(r)
	results, err := s.matches.Similar(r.Context(), chirouter.URLParam(r, "itemID"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Matches: scoredToResponse(results)})
}

// MatchOccasion handles GET /match/occasion/{occasion}.
func (s *Server) MatchOccasion(w http.ResponseWriter, r *http.Request) {
	occasion := chirouter.URLParam(r, "occasion")
	results, err := s.matches.Match(r.Context(),
		domain.OccasionRequest{Occasion: occasion},
		matchuc.Options{Limit: s.parseLimit(r)})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Matches: scoredToResponse(results)})
}

// MatchChat handles POST /match/chat.
func (s *Server) MatchChat(w http.ResponseWriter, r *http.Request) {
	var req ChatMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	results, err := s.matches.Match(r.Context(),
		domain.ChatRequest{Text: req.Message},
		matchuc.Options{Limit: limit})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Reply:   chatReply(results),
		Matches: scoredToResponse(results),
	})
}

// MatchFilters handles POST /match/filters. The body carries explicit
// attribute filters, typically produced by an external image analysis.
func (s *Server) MatchFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	cats := make([]domain.Category, 0, len(req.Categories))
	for _, c := range req.Categories {
		cats = append(cats, domain.Category(strings.ToLower(c)))
	}

	results, err := s.matches.Match(r.Context(),
		domain.FiltersRequest{
			Categories: cats,
			Colors:     req.Colors,
			Style:      req.Style,
			Occasion:   req.Occasion,
		},
		matchuc.Options{Limit: limit})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Matches: scoredToResponse(results)})
}

// CurateOutfits handles GET /occasions/{occasion}/outfits.
func (s *Server) CurateOutfits(w http.ResponseWriter, r *http.Request) {
	count := s.cfg.OutfitCount
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	outfits := s.outfits.Curate(r.Context(), chirouter.URLParam(r, "occasion"), count)

	resp := OutfitListResponse{Outfits: make([]OutfitResponse, len(outfits))}
	for i, o := range outfits {
		resp.Outfits[i] = outfitToResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetWishlist handles GET /wishlist/{userID}.
func (s *Server) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.wishlists.List(r.Context(), chirouter.URLParam(r, "userID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WishlistResponse{Items: itemsToResponse(items)})
}

// AddWishlistItem handles POST /wishlist/{userID}.
func (s *Server) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req WishlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "item_id is required")
		return
	}

	if err := s.wishlists.Add(r.Context(), chirouter.URLParam(r, "userID"), req.ItemID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveWishlistItem handles DELETE /wishlist/{userID}/items/{itemID}.
func (s *Server) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	userID := chirouter.URLParam(r, "userID")
	itemID := chirouter.URLParam(r, "itemID")
	if err := s.wishlists.Remove(r.Context(), userID, itemID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WishlistPairings handles GET /wishlist/{userID}/items/{itemID}/pairings.
func (s *Server) WishlistPairings(w http.ResponseWriter, r *http.Request) {
	userID := chirouter.URLParam(r, "userID")
	itemID := chirouter.URLParam(r, "itemID")

	results, err := s.wishlists.Pairings(r.Context(), userID, itemID, s.parseLimit(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	reply := ""
	if item, ierr := s.catalog.GetByID(itemID); ierr == nil {
		reply = pairingReply(len(results), item.Title)
	}
	writeJSON(w, http.StatusOK, MatchResponse{Reply: reply, Matches: scoredToResponse(results)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// parseLimit reads the limit query param. Missing or malformed values fall
// back to the configured default; the ranker clamps the rest.
func (s *Server) parseLimit(r *http.Request) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return s.cfg.DefaultLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return s.cfg.DefaultLimit
	}
	return n
}

// chatReply builds the stylist's message for a chat match result.
func chatReply(results []domain.ScoredItem) string {
	if len(results) == 0 {
		return "I couldn't find an exact match right now. Tell me a bit more about what you're looking for!"
	}
	return fmt.Sprintf("Perfect! I found %d great matches for you. Check out my picks below!", len(results))
}

// pairingReply builds the stylist's message for a wishlist pairing result.
func pairingReply(n int, title string) string {
	if n == 0 {
		return fmt.Sprintf("I couldn't find pieces that pair with your %s right now.", title)
	}
	return fmt.Sprintf("I found %d pieces that pair well with your %s.", n, title)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrItemNotFound,
		domain.ErrInvalidItem,
		domain.ErrDuplicateItemID,
		domain.ErrUnknownRequest,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
