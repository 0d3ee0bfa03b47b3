package scope

import "sort"

// Binding is one name-to-value entry of an augmentation.
type Binding struct {
	Name  string
	Value any
}

// Augmentation is an ordered list of extra bindings supplied by a caller.
// Each entry becomes directly addressable in a new scope, and the whole
// augmentation is additionally reachable under one reserved name.
type Augmentation []Binding

// NewAugmentation creates an augmentation from alternating name/value pairs
// given as bindings, preserving order.
func NewAugmentation(bindings ...Binding) Augmentation {
	return Augmentation(bindings)
}

// AugmentationFromMap creates an augmentation from a map. Entries are
// ordered by name so repeated calls produce identical augmentations.
func AugmentationFromMap(m map[string]any) Augmentation {
	if len(m) == 0 {
		return nil
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	aug := make(Augmentation, len(names))
	for i, name := range names {
		aug[i] = Binding{Name: name, Value: m[name]}
	}

	return aug
}

// Get returns the value of the first binding with the given name.
func (a Augmentation) Get(name string) (any, bool) {
	for _, bind := range a {
		if bind.Name == name {
			return bind.Value, true
		}
	}

	return nil, false
}

// Map returns the augmentation as a map. Later bindings win on duplicate
// names, matching the projection order of [NewScope].
func (a Augmentation) Map() map[string]any {
	m := make(map[string]any, len(a))

	for _, bind := range a {
		m[bind.Name] = bind.Value
	}

	return m
}
