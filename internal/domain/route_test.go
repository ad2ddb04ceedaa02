package domain

import (
	"reflect"
	"testing"
)

func TestParseEstimatedMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"45 minutes", 45, true},
		{"2 hours", 120, true},
		{"1 hour", 60, true},
		{"1 minute", 1, true},
		{"30minutes", 30, true},
		{"about 3 hours 15 minutes", 180, true},
		{"quick", 0, false},
		{"", 0, false},
		{"2 Hours", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseEstimatedMinutes(tc.in)
		if got != tc.minutes || ok != tc.ok {
			t.Fatalf("ParseEstimatedMinutes(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.minutes, tc.ok)
		}
	}
}

func TestHumanizeMinutes(t *testing.T) {
	tests := map[int]string{
		0:   "0 minutes",
		1:   "1 minute",
		45:  "45 minutes",
		60:  "1 hour",
		120: "2 hours",
		61:  "1 hour 1 minute",
		150: "2 hours 30 minutes",
		-5:  "0 minutes",
	}

	for in, want := range tests {
		if got := HumanizeMinutes(in); got != want {
			t.Fatalf("HumanizeMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestHumanizedEstimatesParseBack(t *testing.T) {
	for _, total := range []int{5, 59, 60, 180} {
		got, ok := ParseEstimatedMinutes(HumanizeMinutes(total))
		if !ok || got != total {
			t.Fatalf("round trip of %d = (%d, %v)", total, got, ok)
		}
	}
}

func TestRouteStops(t *testing.T) {
	r := Route{PathDetails: " Depot -> 12  Elm St → Oak Ave; Pine Rd | | Landfill "}
	want := []string{"Depot", "12 Elm St", "Oak Ave", "Pine Rd", "Landfill"}

	if got := r.Stops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Stops() = %#v, want %#v", got, want)
	}

	empty := Route{PathDetails: "   "}
	if got := empty.Stops(); len(got) != 0 {
		t.Fatalf("expected no stops, got %#v", got)
	}
}
