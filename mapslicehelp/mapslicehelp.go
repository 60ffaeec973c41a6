package mapslicehelp

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func OrderedMapKeys[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []K {
	l := make([]K, m.Len())
	i := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		l[i] = p.Key
		i++
	}
	return l
}

func OrderedMapValues[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []V {
	l := make([]V, m.Len())
	i := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		l[i] = p.Value
		i++
	}
	return l
}

// Nth returns the value at (zero based) position n in insertion order.
func Nth[K comparable, V any](m *orderedmap.OrderedMap[K, V], n int) (k K, v V, ok bool) {
	if n < 0 {
		return k, v, false
	}
	i := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		if i == n {
			return p.Key, p.Value, true
		}
		i++
	}
	return k, v, false
}
