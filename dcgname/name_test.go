package dcgname

import "testing"

func TestOfStringInterns(t *testing.T) {
	a := OfString("foo")
	b := OfString("foo")
	if !a.Equal(b) {
		t.Fatalf("two Names built from the same string must be Equal")
	}
	if a != b {
		t.Fatalf("OfString should intern: expected pointer identity for equal strings")
	}
}

func TestForkIsDeterministic(t *testing.T) {
	n := OfString("root")
	a1, a2 := n.Fork()
	b1, b2 := n.Fork()
	if !a1.Equal(b1) || !a2.Equal(b2) {
		t.Fatalf("Fork must be pure: forking the same Name twice should yield equal children")
	}
	if a1.Equal(a2) {
		t.Fatalf("Fork's two children must not be Equal to each other")
	}
}

func TestPairDiffersFromEitherInput(t *testing.T) {
	a, b := OfString("x"), OfString("y")
	p := a.Pair(b)
	if p.Equal(a) || p.Equal(b) {
		t.Fatalf("Pair(a, b) must not equal either a or b")
	}
}

func TestGensymNeverRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := Gensym()
		if seen[n.String()] {
			t.Fatalf("Gensym produced a repeated name: %s", n.String())
		}
		seen[n.String()] = true
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := OfString("stable")
	b := OfString("stable")
	if a.Hash() != b.Hash() {
		t.Fatalf("Equal Names must hash equal")
	}
}
