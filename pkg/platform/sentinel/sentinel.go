package sentinel

import "errors"

// Infrastructure facts returned by session stores and platform clients,
// optionally wrapped. Services translate them into coded domain errors.
//
//   - ErrNotFound: no record under the key (or it has expired)
//   - ErrUnavailable: the backing service could not be reached
//   - ErrCorrupt: a stored record could not be decoded
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrCorrupt     = errors.New("corrupt record")
)
