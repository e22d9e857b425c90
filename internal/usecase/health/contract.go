package health

import "context"

// DBPinger checks store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports how many items the catalog holds.
type CatalogChecker interface {
	Len() int
}
