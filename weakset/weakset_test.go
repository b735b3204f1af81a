package weakset

import "testing"

type fakeElt struct {
	id       uint64
	obsolete bool
}

func (e *fakeElt) PeerID() uint64 { return e.id }
func (e *fakeElt) Obsolete() bool { return e.obsolete }

func TestMergeDedupesByPeerID(t *testing.T) {
	s := New[*fakeElt]()
	a := &fakeElt{id: 1}
	b := &fakeElt{id: 1}

	got := s.Merge(a)
	if got != a {
		t.Fatalf("first Merge should return the inserted element")
	}
	got = s.Merge(b)
	if got != a {
		t.Fatalf("Merge with an equal PeerID should return the existing element, got a different one")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestMergeDistinctPeerIDs(t *testing.T) {
	s := New[*fakeElt]()
	s.Merge(&fakeElt{id: 1})
	s.Merge(&fakeElt{id: 2})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestFoldSkipsAndCompactsObsolete(t *testing.T) {
	s := New[*fakeElt]()
	live := &fakeElt{id: 1}
	dead := &fakeElt{id: 2, obsolete: true}
	s.Merge(live)
	s.Merge(dead)

	var visited []uint64
	s.Fold(func(e *fakeElt) { visited = append(visited, e.PeerID()) })
	if len(visited) != 1 || visited[0] != 1 {
		t.Fatalf("Fold visited %v, want only [1]", visited)
	}
	if s.Len() != 1 {
		t.Fatalf("Fold should have compacted the obsolete entry out, Len() = %d", s.Len())
	}
}

func TestMergeIgnoresObsoleteWhenMatching(t *testing.T) {
	s := New[*fakeElt]()
	dead := &fakeElt{id: 1, obsolete: true}
	s.Merge(dead)

	fresh := &fakeElt{id: 1}
	got := s.Merge(fresh)
	if got != fresh {
		t.Fatalf("Merge should not match an Obsolete element sharing the same PeerID")
	}
}
