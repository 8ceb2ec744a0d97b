package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same identifier is
	// already stored. Only reachable when identifiers are client-supplied;
	// kept for compatibility with that create variant.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItem indicates a field violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrNoArguments indicates a filter or update carried no usable fields.
	ErrNoArguments = errors.New("no query arguments provided")

	// ErrDBOperationFailed indicates the store did not acknowledge a write.
	ErrDBOperationFailed = errors.New("database operation failed")
)
