package domain

import "errors"

var (
	// ErrItemNotFound signals a missing catalog item.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItemID signals two catalog entries sharing an id.
	ErrDuplicateItemID = errors.New("duplicate item id")
	// ErrInvalidItem signals a malformed catalog entry.
	ErrInvalidItem = errors.New("invalid catalog item")
	// ErrUnknownRequest signals a request kind the extractor does not handle.
	ErrUnknownRequest = errors.New("unknown request kind")
)
