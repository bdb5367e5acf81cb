package collections

import "testing"

func TestSet(t *testing.T) {
	set := make(Set[string])

	if !set.Add("a") {
		t.Fatal("first Add should report a new element")
	}
	if set.Add("a") {
		t.Fatal("second Add should report a duplicate")
	}
	if !set.Contains("a") || set.Contains("b") {
		t.Fatalf("unexpected contents: %v", set)
	}

	set.Remove("a")
	set.Remove("b")
	if set.Contains("a") || len(set) != 0 {
		t.Fatalf("expected an empty set, got %v", set)
	}
}
