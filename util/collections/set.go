package collections

// Set is an unordered collection of distinct comparable values
type Set[V comparable] map[V]struct{}

// Add an element to the set, and return whether it was absent before
func (set Set[V]) Add(value V) bool {
	if set.Contains(value) {
		return false
	}
	set[value] = struct{}{}
	return true
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}
