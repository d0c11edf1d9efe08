package hashing

import (
	"testing"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/engine"
)

func TestFingerprintConsistency(t *testing.T) {
	// Two boards dealt from the same seed must hash the same
	b1 := board.New(10913)
	b2 := board.New(10913)

	if h1, h2 := Fingerprint(b1), Fingerprint(b2); h1 != h2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", h1, h2)
	}
	if w1, w2 := WeakHash(b1), WeakHash(b2); w1 != w2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", w1, w2)
	}
}

func TestFingerprintDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"card moved to free cell", "1: KS QH\n2: 5C", "1: KS\n2: 5C\na: QH"},
		{"card moved between cascades", "1: KS QH\n2: 5C", "1: KS\n2: 5C QH"},
		{"card homed", "1: KS AH\n2: 5C", "1: KS\n2: 5C\nH: AH"},
		{"order within cascade", "1: KS QH", "1: QH KS"},
		{"different deals", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x, y *board.Board
			if tt.a == "" {
				x, y = board.New(1), board.New(2)
			} else {
				x, y = board.MustParseLayout(tt.a), board.MustParseLayout(tt.b)
			}
			if Fingerprint(x) == Fingerprint(y) {
				t.Errorf("Different positions produced the same hash:\n%s\n%s", x, y)
			}
		})
	}
}

func TestFingerprintIgnoresColumnOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"cascades swapped", "1: KS QH\n2: 5C 4D\n3: 9H", "1: 5C 4D\n2: 9H\n3: KS QH"},
		{"free cells swapped", "1: KS\na: QH\nc: 2D", "1: KS\nb: 2D\nd: QH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := board.MustParseLayout(tt.a), board.MustParseLayout(tt.b)
			if Fingerprint(x) != Fingerprint(y) {
				t.Errorf("Equivalent positions produced different hashes:\n%s\n%s", x, y)
			}
			if WeakHash(x) != WeakHash(y) {
				t.Errorf("Equivalent positions produced different weak hashes")
			}
		})
	}
}

func TestFingerprintIgnoresHistory(t *testing.T) {
	b := board.New(10913)
	before := Fingerprint(b)

	if err := engine.ApplyMove(b, "26", true); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	engine.ApplyAutomaticMoves(b)
	if Fingerprint(b) == before {
		t.Fatal("position after a move should hash differently")
	}

	engine.Undo(b)
	if got := Fingerprint(b); got != before {
		t.Errorf("Fingerprint after undo = %x, want %x", got, before)
	}
}

func TestWeakHash(t *testing.T) {
	b := board.MustParseLayout("1: KS\na: QH\nb: 5C\nD: AD 2D\nS: AS")
	// C=0 D=2 H=0 S=1, two cards in free cells
	want := uint32(0x0)<<16 | 0x2<<12 | 0x0<<8 | 0x1<<4 | 0x2
	if got := WeakHash(b); got != want {
		t.Errorf("WeakHash() = %#x, want %#x", got, want)
	}
}

func TestRepetitionDetector(t *testing.T) {
	d := NewRepetitionDetector()
	b := board.MustParseLayout("1: KS QH\n2: 9D\n3: 8C")

	if _, repeated := d.CheckAndAdd(b); repeated {
		t.Error("First position should not be a repeat")
	}

	if err := engine.ApplyMove(b, "1a", true); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if _, repeated := d.CheckAndAdd(b); repeated {
		t.Error("New position should not be a repeat")
	}

	// Back to the start by returning the queen
	if err := engine.ApplyMove(b, "a1", true); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	first, repeated := d.CheckAndAdd(b)
	if !repeated {
		t.Fatal("Returning to the start should be a repeat")
	}
	if first != 0 {
		t.Errorf("firstSeen = %d, want 0", first)
	}

	if d.RepeatCount() != 1 {
		t.Errorf("RepeatCount() = %d, want 1", d.RepeatCount())
	}
	if d.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", d.UniqueCount())
	}

	d.Reset()
	if d.RepeatCount() != 0 || d.UniqueCount() != 0 {
		t.Error("Reset should clear the detector")
	}
	if _, repeated := d.CheckAndAdd(b); repeated {
		t.Error("Position after Reset should not be a repeat")
	}
}

func TestRepetitionDetectorWeakHashCollision(t *testing.T) {
	d := NewRepetitionDetector()
	b := board.New(1)
	d.CheckAndAdd(b)

	// Same fingerprint bucket, different weak hash: not a repeat
	h := Fingerprint(b)
	d.seen[h][0].Weak++
	if _, repeated := d.CheckAndAdd(b); repeated {
		t.Error("Mismatched weak hash should not count as a repeat")
	}
	if d.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", d.UniqueCount())
	}
}
