package history

import (
	"reflect"
	"testing"
)

func TestSnapshotEmpty(t *testing.T) {
	tr := NewTracker()
	got := tr.Snapshot()
	if got == nil {
		t.Fatal("Snapshot() on empty tracker returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Snapshot() len = %d, want 0", len(got))
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestAppendKeepsOrder(t *testing.T) {
	tr := NewTracker()
	tr.Append(60)
	tr.Append(62)
	tr.Append(61)

	want := []float64{60, 62, 61}
	if got := tr.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestAppendKeepsDuplicates(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 3; i++ {
		tr.Append(70)
	}
	if got := tr.Snapshot(); !reflect.DeepEqual(got, []float64{70, 70, 70}) {
		t.Errorf("Snapshot() = %v, want three entries of 70", got)
	}
}

func TestLenGrowsByOne(t *testing.T) {
	tr := NewTracker()
	for i := 1; i <= 1000; i++ {
		tr.Append(float64(i))
		if tr.Len() != i {
			t.Fatalf("after %d appends Len() = %d", i, tr.Len())
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker()
	tr.Append(50)

	snap := tr.Snapshot()
	snap[0] = 999

	if got := tr.Snapshot()[0]; got != 50 {
		t.Errorf("mutating a snapshot changed the tracker: got %v, want 50", got)
	}
}
