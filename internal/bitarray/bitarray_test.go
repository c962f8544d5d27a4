package bitarray

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	a := New(149)

	if a.Len() != 149 {
		t.Errorf("expected len 149, got %d", a.Len())
	}
	if !a.Empty() {
		t.Errorf("expected new array to be empty")
	}

	a.Set(10)
	if !a.Test(10) {
		t.Errorf("expected bit 10 to be set")
	}
	if a.Empty() {
		t.Errorf("expected array to be non-empty")
	}
	if a.Count() != 1 {
		t.Errorf("expected count 1, got %d", a.Count())
	}

	a.Clear(10)
	if a.Test(10) {
		t.Errorf("expected bit 10 to be clear")
	}
	if !a.Empty() {
		t.Errorf("expected array to be empty after clearing last bit")
	}

	a.Set(10)
	a.Set(20)
	a.Set(130)

	if a.Count() != 3 {
		t.Errorf("expected count 3, got %d", a.Count())
	}

	a.ClearAll()
	if a.Count() != 0 || !a.Empty() {
		t.Errorf("expected empty array after ClearAll")
	}
}

func TestArray_FindFirst(t *testing.T) {
	a := New(646)

	a.Set(645)
	if got := a.FindFirst(); got != 645 {
		t.Errorf("expected FindFirst 645, got %d", got)
	}

	a.Set(64)
	if got := a.FindFirst(); got != 64 {
		t.Errorf("expected FindFirst 64, got %d", got)
	}

	a.Set(63)
	if got := a.FindFirst(); got != 63 {
		t.Errorf("expected FindFirst 63, got %d", got)
	}

	a.Set(0)
	if got := a.FindFirst(); got != 0 {
		t.Errorf("expected FindFirst 0, got %d", got)
	}

	// Clearing the reported bit exposes the next smallest set bit.
	a.Clear(0)
	if got := a.FindFirst(); got != 63 {
		t.Errorf("expected FindFirst 63 after clear, got %d", got)
	}
	a.Clear(63)
	if got := a.FindFirst(); got != 64 {
		t.Errorf("expected FindFirst 64 after clear, got %d", got)
	}
}

func TestArray_SummaryTracksLeafEmptiness(t *testing.T) {
	a := New(256)

	// Two bits in the same leaf word: clearing one must not hide the other.
	a.Set(70)
	a.Set(100)
	a.Clear(70)
	if got := a.FindFirst(); got != 100 {
		t.Errorf("expected FindFirst 100, got %d", got)
	}
	a.Clear(100)
	if !a.Empty() {
		t.Errorf("expected empty array once both bits cleared")
	}
}

// TestArray_RandomOps mirrors a random set/clear workload into a roaring
// bitmap and checks membership and minimum against it after every step.
func TestArray_RandomOps(t *testing.T) {
	const capacity = 646
	rng := rand.New(rand.NewSource(42))

	a := New(capacity)
	ref := roaring.New()

	for step := 0; step < 20000; step++ {
		i := rng.Intn(capacity)
		if rng.Intn(2) == 0 {
			a.Set(i)
			ref.Add(uint32(i))
		} else {
			a.Clear(i)
			ref.Remove(uint32(i))
		}

		require.Equal(t, ref.Contains(uint32(i)), a.Test(i), "bit %d after step %d", i, step)
		require.Equal(t, ref.IsEmpty(), a.Empty(), "emptiness after step %d", step)
		require.Equal(t, int(ref.GetCardinality()), a.Count(), "cardinality after step %d", step)

		if !ref.IsEmpty() {
			require.Equal(t, int(ref.Minimum()), a.FindFirst(), "minimum after step %d", step)
		}
	}
}

func BenchmarkArray_SetClear(b *testing.B) {
	a := New(646)
	for i := 0; i < b.N; i++ {
		a.Set(i % 646)
		a.Clear(i % 646)
	}
}

func BenchmarkArray_FindFirst(b *testing.B) {
	a := New(646)
	a.Set(645)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.FindFirst()
	}
}
