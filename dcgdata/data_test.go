package dcgdata

import "testing"

func TestComparableEquality(t *testing.T) {
	var c Comparable[int]
	if !c.Equal(5, 5) {
		t.Fatalf("Equal(5, 5) = false, want true")
	}
	if c.Equal(5, 6) {
		t.Fatalf("Equal(5, 6) = true, want false")
	}
	if c.Sanitize(5) != 5 {
		t.Fatalf("Sanitize must be the identity for comparable types")
	}
}

func TestCloneableUsesProvidedFuncs(t *testing.T) {
	c := Cloneable[[]int]{
		Eq: func(a, b []int) bool {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		Clone: func(v []int) []int {
			out := make([]int, len(v))
			copy(out, v)
			return out
		},
	}

	orig := []int{1, 2, 3}
	cloned := c.Sanitize(orig)
	if !c.Equal(orig, cloned) {
		t.Fatalf("cloned slice must compare Equal to the original")
	}
	cloned[0] = 99
	if orig[0] == 99 {
		t.Fatalf("Sanitize must produce an independent copy, not an alias")
	}
}
