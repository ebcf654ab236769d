package spec2d

import (
	"errors"
	"fmt"
)

// Errors returned by collection constructors and attribute resolution.
var (
	ErrUnknownAttribute = errors.New("spec2d: unknown attribute")
	ErrUnknownParam     = errors.New("spec2d: metadata parameter not present")
	ErrParamIndex       = errors.New("spec2d: metadata parameter is not indexable by member")
	ErrEmptyFluxTable   = errors.New("spec2d: flux table needs at least one row")
	ErrIndexRange       = errors.New("spec2d: member index out of range")
	ErrInvalidArgs      = errors.New("spec2d: invalid arguments for vectorized call")
)

// Metadata carries caller-supplied named values attached to a collection at
// construction time, such as the stellar parameters of the grid point a
// spectrum stack came from. Values may be scalars or per-member slices; no
// length validation against the member count is performed.
//
// Metadata names shadow member attributes in the dynamic access path, so
// entries named after member capabilities ("flux", "sample", ...) hide them.
type Metadata map[string]any

// At returns the entry stored under name indexed at member i. The entry must
// hold a slice.
func (m Metadata) At(name string, i int) (any, error) {
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}

	switch vv := v.(type) {
	case []float64:
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(vv))
		}
		return vv[i], nil
	case []int:
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(vv))
		}
		return vv[i], nil
	case []string:
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(vv))
		}
		return vv[i], nil
	case []any:
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(vv))
		}
		return vv[i], nil
	}
	return nil, fmt.Errorf("%w: %q holds %T", ErrParamIndex, name, v)
}
