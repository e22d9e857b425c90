package match

import "github.com/styleloom/stylist/internal/domain"

// CatalogReader is the read-only catalog contract the matcher depends on.
type CatalogReader interface {
	GetAll() []domain.Item
	GetByID(id string) (domain.Item, error)
}

// QueryExtractor normalizes caller requests into queries.
type QueryExtractor interface {
	Normalize(req domain.Request) (domain.Query, error)
}
