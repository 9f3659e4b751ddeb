package viewstate

import "testing"

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want State
	}{
		{"initial", Inputs{}, Welcome},
		{"searching", Inputs{IsSearching: true, Query: "budget"}, Loading},
		{"results", Inputs{ResultCount: 3, Query: "budget"}, Results},
		{"no matches", Inputs{Query: "budget"}, NoResults},
		{"preview", Inputs{HasPreview: true}, Preview},
		{"preview beats results", Inputs{HasPreview: true, ResultCount: 3, Query: "budget"}, Preview},
		{"preview beats loading", Inputs{HasPreview: true, IsSearching: true, Query: "x"}, Preview},
		{"preview beats everything", Inputs{HasPreview: true, IsSearching: true, ResultCount: 9, Query: "x"}, Preview},
		{"loading beats stale results", Inputs{IsSearching: true, ResultCount: 5, Query: "new"}, Loading},
		{"cleared query returns home", Inputs{}, Welcome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Preview:   "preview",
		Loading:   "loading",
		Results:   "results",
		NoResults: "no-results",
		Welcome:   "welcome",
	} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
