package catalog

// orderedMap is a map keyed by entity id with stable insertion iteration
// order. Save reproducibility depends on it: entities are always iterated
// in the order they entered the catalog, never in map key order.
type orderedMap[V any] struct {
	keys   []int64
	values map[int64]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[int64]V)}
}

// Get returns the value for key.
func (m *orderedMap[V]) Get(key int64) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value. A new key is appended to the iteration order; an
// existing key keeps its position.
func (m *orderedMap[V]) Set(key int64, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes a key, preserving the order of the remaining entries.
func (m *orderedMap[V]) Delete(key int64) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *orderedMap[V]) Len() int { return len(m.keys) }

// Values returns the values in insertion order.
func (m *orderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}
