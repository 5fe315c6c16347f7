package models

import "testing"

func TestPositionFromTypeID(t *testing.T) {
	p, err := PositionFromTypeID(4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p != PositionFWD {
		t.Fatalf("expected FWD, got %v", p)
	}

	if _, err := PositionFromTypeID(0); err == nil {
		t.Fatal("expected error for type id 0")
	}
	if _, err := PositionFromTypeID(5); err == nil {
		t.Fatal("expected error for type id 5")
	}
}

func TestPositionOneHot(t *testing.T) {
	enc := PositionMID.OneHot()
	want := [NumPositions]float64{0, 0, 1, 0}
	if enc != want {
		t.Fatalf("expected %v, got %v", want, enc)
	}

	var invalid Position
	if invalid.OneHot() != [NumPositions]float64{} {
		t.Fatal("expected all-zero encoding for invalid position")
	}
}

func TestParsePositionRoundTrip(t *testing.T) {
	for _, p := range AllPositions() {
		parsed, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("expected no error for %s, got %v", p, err)
		}
		if parsed != p {
			t.Fatalf("expected %v, got %v", p, parsed)
		}
	}

	if _, err := ParsePosition("ST"); err == nil {
		t.Fatal("expected error for unknown position name")
	}
}

func TestFixtureOpponentOf(t *testing.T) {
	f := Fixture{ID: 1, HomeTeamID: 3, AwayTeamID: 8}

	if !f.Involves(3) || !f.Involves(8) {
		t.Fatal("expected both sides to be involved")
	}
	if f.Involves(5) {
		t.Fatal("expected uninvolved team to be reported as such")
	}

	opp, ok := f.OpponentOf(3)
	if !ok || opp != 8 {
		t.Fatalf("expected opponent 8, got %d ok=%v", opp, ok)
	}
	opp, ok = f.OpponentOf(8)
	if !ok || opp != 3 {
		t.Fatalf("expected opponent 3, got %d ok=%v", opp, ok)
	}
	if _, ok := f.OpponentOf(5); ok {
		t.Fatal("expected no opponent for uninvolved team")
	}
}
