// Package outfit assembles multi-item looks for an occasion. Assembly is
// deterministic: every bucket pick is the highest-scoring available item, and
// candidate variety comes from walking down the ranked anchor pieces rather
// than from random selection.
package outfit

import (
	"context"

	"go.uber.org/zap"

	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/metrics"
	"github.com/styleloom/stylist/internal/usecase/extract"
	"github.com/styleloom/stylist/internal/usecase/match"
)

// DefaultCount is how many outfit candidates to assemble when the caller
// passes none.
const DefaultCount = 3

// CatalogReader is the read-only catalog contract.
type CatalogReader interface {
	GetAll() []domain.Item
}

// Service curates outfits.
type Service struct {
	catalog CatalogReader
	scorer  *match.Scorer
	logger  *zap.Logger
}

// New creates an outfit service.
func New(catalog CatalogReader, scorer *match.Scorer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, scorer: scorer, logger: logger}
}

// buckets holds the catalog partitioned by outfit role, each bucket ranked
// best-first.
type buckets struct {
	tops        []domain.ScoredItem
	bottoms     []domain.ScoredItem
	dresses     []domain.ScoredItem
	footwear    []domain.ScoredItem
	accessories []domain.ScoredItem
	outerwear   []domain.ScoredItem
}

// Curate assembles up to count outfits for the occasion. An unrecognized
// occasion still produces outfits, scored without the occasion bonus. An
// empty catalog yields an empty slice.
func (s *Service) Curate(_ context.Context, occasion string, count int) []domain.Outfit {
	if count <= 0 {
		count = DefaultCount
	}

	occ := extract.Occasion(occasion)
	q := domain.Query{Occasion: occ}

	b := s.partition(q)
	outfits := make([]domain.Outfit, 0, count)

	for k := 0; k < count; k++ {
		o, ok := s.assemble(b, occ, k)
		if !ok {
			break
		}
		if !o.Valid() {
			continue
		}
		o.Description = describeOccasion(occ)
		outfits = append(outfits, o)
	}

	metrics.OutfitsAssembledTotal.Add(float64(len(outfits)))
	s.logger.Debug("outfits curated",
		zap.String("occasion", occ),
		zap.Int("count", len(outfits)),
	)
	return outfits
}

// partition scores every item against the query and groups it into its
// outfit role, ranked best-first within each bucket.
func (s *Service) partition(q domain.Query) buckets {
	var b buckets
	for _, it := range s.catalog.GetAll() {
		score, reason := s.scorer.Score(q, it)
		scored := domain.ScoredItem{Item: it, Score: score, Reason: reason}
		switch it.Category {
		case domain.Tops:
			b.tops = append(b.tops, scored)
		case domain.Bottoms:
			b.bottoms = append(b.bottoms, scored)
		case domain.Dresses:
			b.dresses = append(b.dresses, scored)
		case domain.Footwear:
			b.footwear = append(b.footwear, scored)
		case domain.Jewelry, domain.Bags:
			b.accessories = append(b.accessories, scored)
		case domain.Outerwear:
			b.outerwear = append(b.outerwear, scored)
		}
	}
	match.Rank(b.tops)
	match.Rank(b.bottoms)
	match.Rank(b.dresses)
	match.Rank(b.footwear)
	match.Rank(b.accessories)
	match.Rank(b.outerwear)
	return b
}

// assemble builds the k-th outfit candidate: the k-th ranked anchor (a dress,
// or a top plus a bottom once dresses run out) plus the best footwear and
// accessory, and outerwear for the dressier occasions. Returns ok=false once
// anchors are exhausted.
func (s *Service) assemble(b buckets, occ string, k int) (domain.Outfit, bool) {
	o := domain.Outfit{Occasion: occ}

	switch {
	case k < len(b.dresses):
		o.Items = append(o.Items, b.dresses[k].Item)
	case k-len(b.dresses) < min(len(b.tops), len(b.bottoms)):
		i := k - len(b.dresses)
		o.Items = append(o.Items, b.tops[i].Item, b.bottoms[i].Item)
	default:
		return domain.Outfit{}, false
	}

	if len(b.footwear) > 0 {
		o.Items = append(o.Items, b.footwear[0].Item)
	}
	if len(b.accessories) > 0 {
		o.Items = append(o.Items, b.accessories[0].Item)
	}
	if extract.FormalOccasion(occ) && len(b.outerwear) > 0 {
		o.Items = append(o.Items, b.outerwear[0].Item)
	}

	return o, true
}

// describeOccasion returns the canned outfit description for an occasion.
func describeOccasion(occ string) string {
	switch occ {
	case extract.OccasionWedding:
		return "Elegant and respectful attire perfect for wedding celebrations"
	case extract.OccasionParty:
		return "Stylish and trendy look that will make you stand out"
	case extract.OccasionWork:
		return "Professional and polished outfit for the workplace"
	case extract.OccasionCasual:
		return "Comfortable yet stylish for everyday wear"
	case extract.OccasionDate:
		return "Romantic and charming look perfect for special moments"
	case extract.OccasionTravel:
		return "Comfortable and practical outfit for your journey"
	case extract.OccasionFestival:
		return "Traditional and festive attire for celebrations"
	case extract.OccasionGym:
		return "Comfortable and functional workout wear"
	default:
		return "A perfectly curated outfit for your occasion"
	}
}
