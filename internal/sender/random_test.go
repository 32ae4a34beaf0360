package sender

import (
	"bytes"
	"testing"
)

func TestIDSourceNext(t *testing.T) {
	src := NewIDSource()
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		id, err := src.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if id == 0 {
			t.Fatal("Next() = 0, want non-zero")
		}
		if seen[id] {
			t.Fatalf("Next() repeated id %d", id)
		}
		seen[id] = true
	}
}

func TestIDSourceSkipsZero(t *testing.T) {
	// Eight zero bytes first, then a real value.
	src := &IDSource{rand: bytes.NewReader([]byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0,
	})}
	id, err := src.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if id != 1 {
		t.Errorf("Next() = %d, want 1", id)
	}
}

func TestIDSourceNextN(t *testing.T) {
	ids, err := NewIDSource().NextN(5)
	if err != nil {
		t.Fatalf("NextN() error = %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("NextN() returned %d ids, want 5", len(ids))
	}
	for i, id := range ids {
		if id == 0 {
			t.Errorf("ids[%d] = 0, want non-zero", i)
		}
	}
}
