package domain

// Request is the tagged union of the ways a caller can ask for matches.
// The attribute extractor switches over the concrete types; adding a new
// kind requires extending that switch.
type Request interface {
	requestKind() string
}

// OccasionRequest asks for items suiting a free-text occasion ("wedding",
// "office party", ...).
type OccasionRequest struct {
	Occasion string
}

// AnchorRequest asks for items that pair with an existing catalog item,
// e.g. a wishlist entry.
type AnchorRequest struct {
	ItemID string
}

// ChatRequest asks via a natural-language message ("show me black heels
// for a party").
type ChatRequest struct {
	Text string
}

// FiltersRequest carries pre-extracted attributes: explicit filters from the
// caller, or the output of an external image analysis.
type FiltersRequest struct {
	Categories []Category
	Colors     []string
	Style      string
	Occasion   string
}

func (OccasionRequest) requestKind() string { return "occasion" }
func (AnchorRequest) requestKind() string { return "anchor" }
func (ChatRequest) requestKind() string { return "chat" }
func (FiltersRequest) requestKind() string { return "filters" }

// Kind returns the request discriminator for logging and metrics labels.
func Kind(r Request) string {
	if r == nil {
		return "none"
	}
	return r.requestKind()
}
