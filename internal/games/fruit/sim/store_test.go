package sim

import (
	"testing"
	"time"
)

func newTestObject(id uint64, start, end time.Duration) *Object {
	return &Object{ID: id, Kind: "apple", Start: start, End: end}
}

func ids(objs []*Object) []uint64 {
	out := make([]uint64, len(objs))
	for i, o := range objs {
		out[i] = o.ID
	}
	return out
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStoreMarkCompactKeepsOrder(t *testing.T) {
	s := NewStore()
	for i := uint64(1); i <= 5; i++ {
		s.Append(newTestObject(i, 0, time.Second))
	}

	// Mark adjacent entries during a pass; none may be skipped or revisited.
	visited := 0
	for _, o := range s.Objects() {
		visited++
		if o.ID == 2 || o.ID == 3 {
			s.Mark(o)
		}
	}
	if visited != 5 {
		t.Errorf("visited %d objects, expected 5", visited)
	}

	if removed := s.Compact(); removed != 2 {
		t.Errorf("Compact() = %d, expected 2", removed)
	}
	if got, expected := ids(s.Objects()), []uint64{1, 4, 5}; !equalIDs(got, expected) {
		t.Errorf("Objects() = %v, expected %v", got, expected)
	}
	if s.Head().ID != 1 {
		t.Errorf("Head() = %d, expected 1", s.Head().ID)
	}
}

func TestStoreSweepFIFO(t *testing.T) {
	s := NewStore()
	s.Append(newTestObject(1, 0, 1*time.Second))
	s.Append(newTestObject(2, 500*time.Millisecond, 1500*time.Millisecond))
	s.Append(newTestObject(3, 1*time.Second, 2*time.Second))

	tests := []struct {
		now       time.Duration
		removed   []uint64
		remaining []uint64
	}{
		{999 * time.Millisecond, nil, []uint64{1, 2, 3}},
		{1 * time.Second, nil, []uint64{1, 2, 3}}, // now == End is still alive
		{1*time.Second + 1, []uint64{1}, []uint64{2, 3}},
		{1500 * time.Millisecond, nil, []uint64{2, 3}},
		{3 * time.Second, []uint64{2, 3}, nil},
	}

	for _, tt := range tests {
		removed := s.Sweep(tt.now)
		if !equalIDs(ids(removed), tt.removed) {
			t.Errorf("Sweep(%v) removed %v, expected %v", tt.now, ids(removed), tt.removed)
		}
		if got := ids(s.Objects()); !equalIDs(got, tt.remaining) {
			t.Errorf("after Sweep(%v) = %v, expected %v", tt.now, got, tt.remaining)
		}
	}
}

func TestStoreSweepEarlierEndBehindHead(t *testing.T) {
	s := NewStore()
	s.Append(newTestObject(1, 0, 5*time.Second))
	s.Append(newTestObject(2, time.Second, 2*time.Second))

	removed := s.Sweep(3 * time.Second)
	if got := ids(removed); !equalIDs(got, []uint64{2}) {
		t.Errorf("Sweep() removed %v, expected [2]", got)
	}
	if s.Len() != 1 || s.Head().ID != 1 {
		t.Errorf("remaining = %v, expected [1]", ids(s.Objects()))
	}
}

func TestStoreUpdateOnlyLive(t *testing.T) {
	s := NewStore()
	o := NewLaunch("apple", PlanLaunch(0, -10, 0, 10, 25), time.Second, 5*time.Second, 30)
	s.Append(o)
	before := o.Position

	s.Update(0) // before start
	if o.Position != before {
		t.Errorf("Update before start moved object to %v", o.Position)
	}
	s.Update(1500 * time.Millisecond)
	if o.Position == before {
		t.Error("Update while live did not move object")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Append(newTestObject(1, 0, time.Second))
	s.Append(newTestObject(2, 0, time.Second))
	s.Clear()
	if s.Len() != 0 || s.Head() != nil {
		t.Errorf("Clear() left %d objects", s.Len())
	}
}

func TestObjectLifecycle(t *testing.T) {
	o := NewLaunch("apple", PlanLaunch(2, -10, 0, 12, 25), 2*time.Second, 5*time.Second, 30)

	if o.End != 7*time.Second {
		t.Errorf("End = %v, expected 7s", o.End)
	}
	if o.Position != o.Path.Origin {
		t.Errorf("Position at start = %v, expected origin %v", o.Position, o.Path.Origin)
	}
	if o.Alive(time.Second) || !o.Alive(2*time.Second) || !o.Alive(7*time.Second) || o.Alive(7*time.Second+1) {
		t.Error("Alive() window mismatch")
	}

	o.Update(4500 * time.Millisecond)
	if !approx(o.Rotation, 0.5*30) {
		t.Errorf("Rotation at half life = %v, expected 15", o.Rotation)
	}
}
