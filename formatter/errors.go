package formatter

import "github.com/pkg/errors"

// Configuration errors. Rendering itself never fails.
var (
	// ErrUnknownItem is returned for an item name outside the registry
	ErrUnknownItem = errors.New("unrecognized item")
	// ErrDuplicateItem is returned when an item is selected twice
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrUnknownStyle is returned by New for an unsupported layout style
	ErrUnknownStyle = errors.New("unknown layout style")
)
