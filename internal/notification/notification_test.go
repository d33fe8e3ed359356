package notification

import "testing"

func TestGroupSplitsUrgentAndLow(t *testing.T) {
	list := []Notification{
		{ID: 1, Urgency: Normal},
		{ID: 2, Urgency: Critical},
		{ID: 3, Urgency: Low},
		{ID: 4, Urgency: Critical},
	}
	g := Group(list)
	if len(g.Urgent) != 2 || g.Urgent[0] != 1 || g.Urgent[1] != 3 {
		t.Fatalf("expected urgent [1 3], got %v", g.Urgent)
	}
	if len(g.Low) != 1 || g.Low[0] != 2 {
		t.Fatalf("expected low [2], got %v", g.Low)
	}
}

func TestGroupIsDisjointAndInRange(t *testing.T) {
	levels := []Urgency{Low, Normal, Critical}
	for n := 0; n < 12; n++ {
		list := make([]Notification, n)
		for i := range list {
			list[i] = Notification{ID: ID(i), Urgency: levels[(i*7+n)%3]}
		}
		g := Group(list)
		seen := map[int]bool{}
		for _, idx := range append(append([]int{}, g.Urgent...), g.Low...) {
			if idx < 0 || idx >= n {
				t.Fatalf("index %d out of range for list of %d", idx, n)
			}
			if seen[idx] {
				t.Fatalf("index %d present in both groups", idx)
			}
			seen[idx] = true
		}
	}
}

func TestGroupEmptyList(t *testing.T) {
	g := Group(nil)
	if g.Urgent != nil || g.Low != nil {
		t.Fatalf("expected empty grouping, got %#v", g)
	}
}

func TestParseUrgency(t *testing.T) {
	cases := map[string]Urgency{
		"0":        Low,
		"1":        Normal,
		"2":        Critical,
		"LOW":      Low,
		"normal":   Normal,
		"Critical": Critical,
	}
	for input, expected := range cases {
		got, err := ParseUrgency(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got != expected {
			t.Fatalf("expected %v for %q, got %v", expected, input, got)
		}
	}
	if _, err := ParseUrgency("7"); err == nil {
		t.Fatalf("expected error for out of range urgency")
	}
	if _, err := ParseUrgency("urgent"); err == nil {
		t.Fatalf("expected error for unknown urgency name")
	}
}
