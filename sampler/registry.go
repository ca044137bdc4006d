package sampler

import (
	"context"
	"math"
	"sort"
)

// Kind names a sampler variant in configuration.
type Kind string

const (
	// KindCatalog draws records (or one field) from a loaded dataset.
	KindCatalog Kind = "catalog"
	// KindKey draws power-law distributed integer keys.
	KindKey Kind = "key"
	// KindUUID draws random UUID strings.
	KindUUID Kind = "uuid"
)

// Spec is the configuration of one sampler.
type Spec struct {
	Kind Kind

	// Path loads a catalog from the local filesystem.
	Path string
	// Resource loads a catalog by name from the resource store.
	Resource string
	// Field projects catalog records onto one field.
	Field string

	// Skew is the catalog index skew (must be integral) or the key skew.
	// Nil keeps the sampler default.
	Skew *float64
	// Size is the key-space size. Zero keeps the default.
	Size int
}

// Factory builds a sampler from a spec.
type Factory func(ctx context.Context, spec Spec, opts ...Option) (Sampler, error)

// Registry maps kinds to factories.
type Registry struct {
	factories map[Kind]Factory
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Kind]Factory)}
	r.Register(KindCatalog, newCatalogFromSpec)
	r.Register(KindKey, newKeyFromSpec)
	r.Register(KindUUID, newUUIDFromSpec)
	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind Kind, f Factory) {
	r.factories[kind] = f
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// New builds a fully configured sampler for spec.
func (r *Registry) New(ctx context.Context, spec Spec, opts ...Option) (Sampler, error) {
	f, ok := r.factories[spec.Kind]
	if !ok {
		return nil, configErrorf("unknown sampler kind %q", spec.Kind)
	}
	return f(ctx, spec, opts...)
}

func newCatalogFromSpec(ctx context.Context, spec Spec, opts ...Option) (Sampler, error) {
	if (spec.Path == "") == (spec.Resource == "") {
		return nil, configErrorf("catalog needs exactly one of path or resource")
	}
	if spec.Size != 0 {
		return nil, configErrorf("catalog does not take a size")
	}

	c := NewCatalogSampler(opts...)
	if spec.Skew != nil {
		skew := *spec.Skew
		if skew != math.Trunc(skew) || math.Abs(skew) > math.MaxInt32 {
			return nil, configErrorf("catalog skew must be an integer, got %v", skew)
		}
		c.SetSkew(int(skew))
	}
	if err := c.SetField(spec.Field); err != nil {
		return nil, err
	}

	var err error
	if spec.Path != "" {
		err = c.LoadFromPath(ctx, spec.Path)
	} else {
		err = c.LoadFromResource(ctx, spec.Resource)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newKeyFromSpec(_ context.Context, spec Spec, opts ...Option) (Sampler, error) {
	if spec.Path != "" || spec.Resource != "" || spec.Field != "" {
		return nil, configErrorf("key sampler takes no dataset")
	}
	s := NewKeySampler(opts...)
	if spec.Size != 0 {
		if err := s.SetSize(spec.Size); err != nil {
			return nil, err
		}
	}
	if spec.Skew != nil {
		if err := s.SetSkew(*spec.Skew); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newUUIDFromSpec(_ context.Context, spec Spec, opts ...Option) (Sampler, error) {
	if spec.Path != "" || spec.Resource != "" || spec.Skew != nil || spec.Size != 0 {
		return nil, configErrorf("uuid sampler takes no options")
	}
	return NewUUIDSampler(opts...), nil
}
