package lenenc

// AdaptiveConfig wraps a Config chosen at runtime from a header's config-id
// byte, for callers that don't know the buffer's config at compile time
// (spec.md §9: "an adaptive config that dispatches by function pointer at
// construction time using the header's id byte"). Implementers in languages
// without monomorphization collapse to this variant for every buffer; Go
// callers that do know the config ahead of time should prefer instantiating
// Writer[ConfigN]/Reader[ConfigN] directly instead.
type AdaptiveConfig struct {
	inner Config
}

var _ Config = AdaptiveConfig{}

// NewAdaptiveConfig resolves id to one of the five presets and returns an
// AdaptiveConfig that delegates every Config method to it.
func NewAdaptiveConfig(id uint8) (AdaptiveConfig, error) {
	cfg, err := ForID(id)
	if err != nil {
		return AdaptiveConfig{}, err
	}

	return AdaptiveConfig{inner: cfg}, nil
}

func (a AdaptiveConfig) ID() uint8             { return a.inner.ID() }
func (a AdaptiveConfig) KeyLength() Encoding   { return a.inner.KeyLength() }
func (a AdaptiveConfig) ObjectSize() Encoding  { return a.inner.ObjectSize() }
func (a AdaptiveConfig) ArrayLength() Encoding { return a.inner.ArrayLength() }
func (a AdaptiveConfig) ValueLength() Encoding { return a.inner.ValueLength() }
