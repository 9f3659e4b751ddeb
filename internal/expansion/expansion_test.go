package expansion

import "testing"

func TestToggleParity(t *testing.T) {
	s := New()
	if s.IsExpanded("/corpus/reports") {
		t.Fatal("new set should have nothing expanded")
	}
	s.Toggle("/corpus/reports")
	if !s.IsExpanded("/corpus/reports") {
		t.Error("one toggle should expand")
	}
	s.Toggle("/corpus/reports")
	if s.IsExpanded("/corpus/reports") {
		t.Error("two toggles should collapse")
	}
	s.Toggle("/corpus/reports")
	if !s.IsExpanded("/corpus/reports") {
		t.Error("three toggles should expand again")
	}
}

func TestToggleIndependence(t *testing.T) {
	s := New()
	s.Expand("/corpus/a")
	s.Expand("/corpus/b")
	s.Toggle("/corpus/a")
	if s.IsExpanded("/corpus/a") {
		t.Error("/corpus/a should be collapsed")
	}
	if !s.IsExpanded("/corpus/b") {
		t.Error("/corpus/b should be unaffected")
	}
}

func TestExpandAncestorsOf(t *testing.T) {
	s := New()
	s.ExpandAncestorsOf("/corpus/finance/2024/budget.xlsx")

	for _, p := range []string{"/corpus", "/corpus/finance", "/corpus/finance/2024"} {
		if !s.IsExpanded(p) {
			t.Errorf("ancestor %q should be expanded", p)
		}
	}
	if s.IsExpanded("/corpus/finance/2024/budget.xlsx") {
		t.Error("the path itself should not be an entry")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestExpandAncestorsOfKeepsExisting(t *testing.T) {
	s := New()
	s.Expand("/corpus/other")
	s.ExpandAncestorsOf("/corpus/finance/report.pdf")
	if !s.IsExpanded("/corpus/other") {
		t.Error("unrelated expansion should survive")
	}
	if !s.IsExpanded("/corpus/finance") {
		t.Error("/corpus/finance should be expanded")
	}
}

func TestExpandAncestorsOfNoAccidentalCollapse(t *testing.T) {
	s := New()
	s.Expand("/corpus/finance")
	s.ExpandAncestorsOf("/corpus/finance/report.pdf")
	if !s.IsExpanded("/corpus/finance") {
		t.Error("already expanded ancestor must stay expanded")
	}
}

func TestIsAncestorOf(t *testing.T) {
	tests := []struct {
		ancestor, path string
		want           bool
	}{
		{"/corpus", "/corpus/finance/report.pdf", true},
		{"/corpus/finance", "/corpus/finance/report.pdf", true},
		{"/corpus/fin", "/corpus/finance/report.pdf", false},
		{"/corpus/finance/report.pdf", "/corpus/finance/report.pdf", false},
		{"/corpus/finance/report.pdf", "/corpus/finance", false},
	}
	for _, tt := range tests {
		if got := IsAncestorOf(tt.ancestor, tt.path); got != tt.want {
			t.Errorf("IsAncestorOf(%q, %q) = %v, want %v", tt.ancestor, tt.path, got, tt.want)
		}
	}
}
