package report

import "testing"

func TestAnswerScore(t *testing.T) {
	cases := []struct {
		label    string
		inverted bool
		want     int
		ok       bool
	}{
		{"Ikke sandt", false, 0, true},
		{"Delvist sandt", false, 1, true},
		{"Sandt", false, 2, true},
		{"Ikke sandt", true, 0, true},
		{"Delvist sandt", true, -1, true},
		{"Sandt", true, -2, true},
		{"sandt", false, 0, false},
		{"Ved ikke", false, 0, false},
		{"", false, 0, false},
	}
	for _, c := range cases {
		got, ok := AnswerScore(c.label, c.inverted)
		if got != c.want || ok != c.ok {
			t.Fatalf("AnswerScore(%q,%v)=(%d,%v), want (%d,%v)", c.label, c.inverted, got, ok, c.want, c.ok)
		}
	}
}

func TestScoreTallyAverage(t *testing.T) {
	var empty scoreTally
	if _, ok := empty.average(); ok {
		t.Fatal("empty tally should have no average")
	}

	var tally scoreTally
	tally.add("Sandt", false)      // +2
	tally.add("Ikke sandt", true)  // +0
	tally.add("Ved ikke", false)   // not scorable
	if avg, ok := tally.average(); !ok || avg != 1.0 {
		t.Fatalf("average=(%v,%v), want (1.0,true)", avg, ok)
	}

	var thirds scoreTally
	thirds.add("Sandt", false)         // +2
	thirds.add("Delvist sandt", false) // +1
	thirds.add("Ikke sandt", false)    // +0
	if avg, _ := thirds.average(); avg != 1.0 {
		t.Fatalf("average=%v, want 1.0", avg)
	}

	var rounded scoreTally
	rounded.add("Sandt", false)         // +2
	rounded.add("Ikke sandt", false)    // +0
	rounded.add("Ikke sandt", false)    // +0
	if avg, _ := rounded.average(); avg != 0.67 {
		t.Fatalf("average=%v, want 0.67", avg)
	}
}
