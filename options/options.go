// Package options holds the functional option plumbing shared by every provider constructor.
package options

// NewProviderOption is implemented by every option accepted by a provider constructor. T is the provider type the
// option configures.
// Example:
// ```
//
//	type withPageSize struct{ size int }
//	func (o withPageSize) Apply(p *Provider) {
//		p.options.PageSize = o.size
//	}
//	func (o withPageSize) NewProviderOptionName() string {
//		return "pageSize"
//	}
//
// ```
type NewProviderOption[T any] interface {
	Apply(*T)
	NewProviderOptionName() string
}

// ApplyOptions applies opts to target in order, so later options win. Nil options are skipped.
func ApplyOptions[T any](target *T, opts ...NewProviderOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(target)
	}
}

// OptionFunc adapts a function to NewProviderOption under the given name.
type OptionFunc[T any] struct {
	Name string
	Fn   func(*T)
}

// Apply calls Fn with target.
func (o OptionFunc[T]) Apply(target *T) {
	if o.Fn != nil {
		o.Fn(target)
	}
}

// NewProviderOptionName returns Name.
func (o OptionFunc[T]) NewProviderOptionName() string {
	return o.Name
}

// New returns an OptionFunc option.
func New[T any](name string, fn func(*T)) NewProviderOption[T] {
	return OptionFunc[T]{Name: name, Fn: fn}
}
