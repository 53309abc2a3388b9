package card

import (
	"testing"
)

func TestFromStringRoundTrip(t *testing.T) {
	cases := []struct{ in, canon string }{
		{"h3", "h3"},
		{"3h", "h3"},
		{"St", "st"},
		{"tS", "st"},
		{"10D", "dt"},
		{"D10", "dt"},
		{"ca", "ca"},
		{"ac", "ca"},
		{"dk", "dk"},
	}
	for _, c := range cases {
		got, err := FromString(c.in)
		if err != nil {
			t.Fatalf("FromString(%q): %v", c.in, err)
		}
		if got.String() != c.canon {
			t.Errorf("FromString(%q).String() = %q, want %q", c.in, got.String(), c.canon)
		}
	}
}

func TestFromStringInvalid(t *testing.T) {
	for _, s := range []string{"", "x", "hh", "1h", "zz", "100H"} {
		if _, err := FromString(s); err == nil {
			t.Errorf("FromString(%q): expected error", s)
		}
	}
}

func TestCovers(t *testing.T) {
	red9, _ := FromString("d9")
	blackT, _ := FromString("ct")
	if !Covers(red9, blackT) {
		t.Errorf("expected d9 to cover ct")
	}
	redT, _ := FromString("ht")
	if Covers(redT, blackT) {
		t.Errorf("same-color cards must never cover")
	}
	blackTAlt, _ := FromString("st")
	if !Covers(red9, blackTAlt) {
		t.Errorf("expected d9 to cover st")
	}
	redJ, _ := FromString("hj")
	if Covers(redJ, blackT) {
		t.Errorf("wrong rank adjacency must not cover")
	}
}

func TestParseDeckRejectsWrongSize(t *testing.T) {
	if _, err := ParseDeck("ca c8"); err == nil {
		t.Errorf("expected error for short deck")
	}
}

func TestParseDeckRejectsDuplicate(t *testing.T) {
	s := "ca ca"
	for i := 0; i < 50; i++ {
		s += " c2"
	}
	if _, err := ParseDeck(s); err == nil {
		t.Errorf("expected error for duplicate cards")
	}
}

func TestQuickDealParses(t *testing.T) {
	const quick = "ca c8 da d6 dt dk s2 c2 c9 d2 d7 dj sa c3 ct d3 d8 dq c4 cj d4 d9 c5 cq d5 c6 ck c7 s3 s4 s5 s6 s7 s8 s9 st sj sq sk ha h2 h3 h4 h5 h6 h7 h8 h9 ht hj hq hk"
	d, err := ParseDeck(quick)
	if err != nil {
		t.Fatalf("ParseDeck(quick): %v", err)
	}
	if d[0].String() != "ca" || d[51].String() != "hk" {
		t.Errorf("unexpected deck ends: %v %v", d[0], d[51])
	}
}

func TestNumberedDealDeterministic(t *testing.T) {
	a := NumberedDeal(174985)
	b := NumberedDeal(174985)
	if a != b {
		t.Fatalf("NumberedDeal not reproducible for same seed")
	}
	c := NumberedDeal(1)
	if a == c {
		t.Fatalf("different seeds produced identical deals")
	}
	seen := make(map[Card]bool, NumCards)
	for _, card := range a {
		if seen[card] {
			t.Fatalf("NumberedDeal produced duplicate card %v", card)
		}
		seen[card] = true
	}
	if len(seen) != NumCards {
		t.Fatalf("NumberedDeal did not produce all 52 cards")
	}
}
