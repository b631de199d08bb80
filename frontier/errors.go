package frontier

import "errors"

// ErrInvalidSelectionMode is returned by NewCBFS when constructed with a
// SelectionMode it does not recognise.
var ErrInvalidSelectionMode = errors.New("frontier: invalid CBFS selection method")

// ErrInvalidTopK is returned by NewCBFS when RandomFromTopK or
// KBestAtLevel is requested with a non-positive K.
var ErrInvalidTopK = errors.New("frontier: selection k must be positive")
