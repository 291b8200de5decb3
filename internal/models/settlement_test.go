package models

import (
	"testing"
)

func TestJoinSplitSaleIDs(t *testing.T) {
	ids := []uint{3, 17, 42}

	csv := JoinSaleIDs(ids)
	if csv != "3,17,42" {
		t.Fatalf("verwacht \"3,17,42\", kreeg %q", csv)
	}

	back := SplitSaleIDs(csv)
	if len(back) != len(ids) {
		t.Fatalf("verwacht %d ids, kreeg %d", len(ids), len(back))
	}
	for i := range ids {
		if back[i] != ids[i] {
			t.Fatalf("index %d: verwacht %d, kreeg %d", i, ids[i], back[i])
		}
	}
}

func TestJoinSaleIDsLeeg(t *testing.T) {
	if got := JoinSaleIDs(nil); got != "" {
		t.Fatalf("verwacht lege string, kreeg %q", got)
	}
}

func TestSplitSaleIDsRommel(t *testing.T) {
	got := SplitSaleIDs("1, 2,abc,4")
	want := []uint{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("verwacht %v, kreeg %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("verwacht %v, kreeg %v", want, got)
		}
	}
}

func TestSplitSaleIDsLeeg(t *testing.T) {
	if got := SplitSaleIDs(""); got != nil {
		t.Fatalf("verwacht nil, kreeg %v", got)
	}
}
