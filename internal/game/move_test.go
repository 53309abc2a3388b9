package game

import "testing"

func TestNonTalonPacking(t *testing.T) {
	m := NewNonTalon(Tableau3, Tableau5, 4, 2, true)
	if m.IsTalon() {
		t.Fatal("expected non-talon move")
	}
	if m.From() != Tableau3 || m.To() != Tableau5 {
		t.Errorf("From/To = %v/%v, want Tableau3/Tableau5", m.From(), m.To())
	}
	if m.NCards() != 4 {
		t.Errorf("NCards() = %d, want 4", m.NCards())
	}
	if m.FromUpCount() != 2 {
		t.Errorf("FromUpCount() = %d, want 2", m.FromUpCount())
	}
	if m.NMoves() != 1 {
		t.Errorf("NMoves() = %d, want 1", m.NMoves())
	}
	if !m.Flip() {
		t.Errorf("Flip() = false, want true")
	}
}

func TestTalonPackingPositiveDraw(t *testing.T) {
	m := NewTalon(Foundation2, 5, 3, true)
	if !m.IsTalon() {
		t.Fatal("expected talon move")
	}
	if m.To() != Foundation2 {
		t.Errorf("To() = %v, want Foundation2", m.To())
	}
	if m.NMoves() != 5 {
		t.Errorf("NMoves() = %d, want 5", m.NMoves())
	}
	if m.DrawCount() != 3 {
		t.Errorf("DrawCount() = %d, want 3", m.DrawCount())
	}
	if !m.Recycle() {
		t.Errorf("Recycle() = false, want true")
	}
}

func TestTalonPackingNegativeDraw(t *testing.T) {
	m := NewTalon(Waste, 2, -7, false)
	if m.DrawCount() != -7 {
		t.Errorf("DrawCount() = %d, want -7", m.DrawCount())
	}
	if m.Recycle() {
		t.Errorf("Recycle() = true, want false")
	}
}

func TestMoveListAddGet(t *testing.T) {
	var l MoveList
	l.Add(NewNonTalon(Tableau0, Tableau1, 1, 1, false))
	l.Add(NewTalon(Waste, 1, 1, false))
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Get(0).IsTalon() {
		t.Errorf("first move should be non-talon")
	}
	if !l.Get(1).IsTalon() {
		t.Errorf("second move should be talon")
	}
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Reset() did not clear list")
	}
}
