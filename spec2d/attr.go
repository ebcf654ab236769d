package spec2d

import "fmt"

// AttrKind distinguishes forwarded properties from forwarded methods.
type AttrKind int

const (
	// AttrRead marks a property: access reads the value from every member
	// eagerly, in index order.
	AttrRead AttrKind = iota
	// AttrCall marks a method: access yields a BoundCall that applies
	// identical arguments to every member, in index order.
	AttrCall
)

// BoundCall is a vectorized member method obtained from the dynamic access
// path. Invoking it applies the same arguments to every member in index
// order and collects the per-member results. The first member error aborts
// the call and no partial result is returned.
type BoundCall func(args ...any) ([]any, error)

// capability describes one forwardable member attribute for the dynamic
// access path. Exactly one of read and call is set, per kind.
type capability[M any] struct {
	kind AttrKind
	read func(m M) any
	call func(m M, args ...any) (any, error)
}

// proxy is the attribute-resolution mechanism shared by SpectrumCollection
// and ObservationCollection: a fixed member list, construction-time
// metadata, and a per-member-type capability table.
type proxy[M any] struct {
	members []M
	meta    Metadata
	table   map[string]capability[M]
}

// get resolves name against the collection's own namespace first (the
// member list, then metadata), then against the member capability table.
// Property capabilities vector-read eagerly; method capabilities return a
// BoundCall. Resolution happens on every call, nothing is cached.
func (p *proxy[M]) get(name string) (any, error) {
	if name == "members" {
		return p.members, nil
	}
	if v, ok := p.meta[name]; ok {
		return v, nil
	}

	c, ok := p.table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	if c.kind == AttrRead {
		out := make([]any, len(p.members))
		for i, m := range p.members {
			out[i] = c.read(m)
		}
		return out, nil
	}

	return BoundCall(func(args ...any) ([]any, error) {
		out := make([]any, len(p.members))
		for i, m := range p.members {
			v, err := c.call(m, args...)
			if err != nil {
				return nil, fmt.Errorf("spec2d: %s: member %d: %w", name, i, err)
			}
			out[i] = v
		}
		return out, nil
	}), nil
}

// vectorRead collects read(m) from every member in index order.
func vectorRead[M, T any](members []M, read func(M) T) []T {
	out := make([]T, len(members))
	for i, m := range members {
		out[i] = read(m)
	}
	return out
}

// vectorCall applies call to every member in index order, fail-fast: the
// first member error aborts and no partial result is returned.
func vectorCall[M, T any](members []M, name string, call func(M) (T, error)) ([]T, error) {
	out := make([]T, len(members))
	for i, m := range members {
		v, err := call(m)
		if err != nil {
			return nil, fmt.Errorf("spec2d: %s: member %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func noArgs(name string, args []any) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %d", ErrInvalidArgs, name, len(args))
	}
	return nil
}

func oneFloatArg(name string, args []any) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrInvalidArgs, name, len(args))
	}
	f, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s wants float64, got %T", ErrInvalidArgs, name, args[0])
	}
	return f, nil
}

func oneGridArg(name string, args []any) ([]float64, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrInvalidArgs, name, len(args))
	}
	grid, ok := args[0].([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants []float64, got %T", ErrInvalidArgs, name, args[0])
	}
	return grid, nil
}
