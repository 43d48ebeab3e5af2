package binding

import (
	"go.uber.org/zap"

	"form-binder/form"
	"form-binder/primitive"
)

// Binder seeds forms from their mapped objects and writes valid
// submissions back.
type Binder struct {
	accessor PropertyAccessor
	registry *Registry
	logger   *zap.SugaredLogger

	collector *Collector
	hydrator  *Hydrator
}

type Option func(b *Binder)

func WithAccessor(accessor PropertyAccessor) Option {
	return func(b *Binder) { b.accessor = accessor }
}

func WithRegistry(registry *Registry) Option {
	return func(b *Binder) { b.registry = registry }
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *Binder) { b.logger = logger }
}

func New(opts ...Option) *Binder {
	b := &Binder{}
	for _, opt := range opts {
		opt(b)
	}

	if b.accessor == nil {
		b.accessor = NewReflectAccessor(primitive.CategoryAll)
	}

	if b.registry == nil {
		b.registry = NewRegistry()
	}

	if b.logger == nil {
		b.logger = zap.NewNop().Sugar()
	}

	b.collector = NewCollector(b.accessor, b.logger)
	b.hydrator = NewHydrator(b.accessor, b.registry, b.logger)

	return b
}

func (b *Binder) Collector() *Collector { return b.collector }

func (b *Binder) Hydrator() *Hydrator { return b.hydrator }

func (b *Binder) Registry() *Registry { return b.registry }

// Seed builds the form and fills its default values from the mapped object.
func (b *Binder) Seed(f *form.Form) error {
	if err := f.Build(); err != nil {
		return err
	}

	return b.collector.Seed(f)
}

// Bind submits payload and, when the form is submitted and valid, writes it
// into the mapped object. It reports whether the object was written.
func (b *Binder) Bind(f *form.Form, payload map[string]any) (bool, error) {
	if err := f.Build(); err != nil {
		return false, err
	}

	submitted, err := f.Submit(payload)
	if err != nil || !submitted {
		return false, err
	}

	if !f.IsValid() {
		b.logger.Debugw("form is invalid, mapped object left untouched", "form", f.Name())
		return false, nil
	}

	if err := b.hydrator.Hydrate(f); err != nil {
		return false, err
	}

	return true, nil
}
