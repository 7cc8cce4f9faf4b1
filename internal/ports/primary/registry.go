package primary

import "context"

// RegisterTrolleyRequest records an ADD registry action.
type RegisterTrolleyRequest struct {
	NewID string
	Note  string
}

// RemapTrolleyRequest records a MODIFY registry action (an existing
// trolley renumbered to a new ID). Both IDs are required.
type RemapTrolleyRequest struct {
	OldID string
	NewID string
	Note  string
}

// RegistryService appends trolley ID audit rows. No ID uniqueness is
// enforced; the registry is an audit log, not an index.
type RegistryService interface {
	RegisterTrolley(ctx context.Context, req RegisterTrolleyRequest) error
	RemapTrolley(ctx context.Context, req RemapTrolleyRequest) error
}
