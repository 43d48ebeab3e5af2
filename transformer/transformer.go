package transformer

// Target is the element a transformer converts values for.
type Target interface {
	// Name is the element name, "" for anonymous elements.
	Name() string
	// Type is the element type as exposed to views ("text", "date", "group", ...).
	Type() string
}

// Transformer converts values in both directions.
type Transformer interface {
	ToForm(value any, target Target) any
	FromForm(value any, target Target) any
}

// Identity leaves values untouched. It is the default transformer of every element.
type Identity struct{}

func (Identity) ToForm(value any, _ Target) any   { return value }
func (Identity) FromForm(value any, _ Target) any { return value }

// Chain applies several transformers as one.
type Chain struct {
	transformers []Transformer
}

// NewChain creates a chain; nil transformers are skipped.
func NewChain(transformers ...Transformer) *Chain {
	c := &Chain{}
	for _, t := range transformers {
		c.Add(t)
	}

	return c
}

// Add appends a transformer to the chain.
func (c *Chain) Add(t Transformer) *Chain {
	if t != nil {
		c.transformers = append(c.transformers, t)
	}

	return c
}

// Transformers returns the chained transformers in insertion order.
func (c *Chain) Transformers() []Transformer {
	return c.transformers
}

// ToForm runs the chain from the last transformer to the first.
func (c *Chain) ToForm(value any, target Target) any {
	for i := len(c.transformers) - 1; i >= 0; i-- {
		value = c.transformers[i].ToForm(value, target)
	}

	return value
}

// FromForm runs the chain from the first transformer to the last.
func (c *Chain) FromForm(value any, target Target) any {
	for _, t := range c.transformers {
		value = t.FromForm(value, target)
	}

	return value
}
