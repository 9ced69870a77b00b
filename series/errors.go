package series

import "errors"

// Errors returned by series and panel constructors.
var (
	ErrRagged        = errors.New("series: ragged data")
	ErrShapeMismatch = errors.New("series: instances must share channel and sample counts")
)
