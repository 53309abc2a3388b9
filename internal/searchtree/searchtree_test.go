package searchtree

import (
	"sync"
	"testing"

	"github.com/arjunmenon/klondikesolve/internal/game"
)

func TestAppendAndPath(t *testing.T) {
	tr := New()
	m1 := game.NewNonTalon(game.Tableau0, game.Tableau1, 1, 1, false)
	m2 := game.NewTalon(game.Waste, 1, 1, false)
	i1 := tr.Append(m1, Root)
	i2 := tr.Append(m2, i1)

	path := tr.Path(i2)
	if len(path) != 2 || path[0] != m1 || path[1] != m2 {
		t.Fatalf("Path(i2) = %+v, want [m1, m2]", path)
	}
	if len(tr.Path(Root)) != 0 {
		t.Fatalf("Path(Root) should be empty")
	}
}

func TestConcurrentAppendAndRead(t *testing.T) {
	tr := New()
	const n = 10000
	var wg sync.WaitGroup
	indices := make([]Index, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			indices[i] = tr.Append(game.NewTalon(game.Waste, 1, 1, false), Root)
		}(i)
	}
	wg.Wait()
	if tr.Len() != n {
		t.Fatalf("Len() = %d, want %d", tr.Len(), n)
	}
	for _, idx := range indices {
		if _, prev := tr.Get(idx); prev != Root {
			t.Fatalf("unexpected prev for idx %d", idx)
		}
	}
}
