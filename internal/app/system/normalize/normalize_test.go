package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	if got := Email("  Alice@Example.EDU "); got != "alice@example.edu" {
		t.Errorf("Email: got %q", got)
	}
}

func TestRoleAndStatus(t *testing.T) {
	if got := Role(" Student "); got != "student" {
		t.Errorf("Role: got %q", got)
	}
	if got := Status(" Disabled "); got != "disabled" {
		t.Errorf("Status: got %q", got)
	}
	if got := ConnectionStatus(" accepted "); got != "ACCEPTED" {
		t.Errorf("ConnectionStatus: got %q", got)
	}
}

func TestTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "go, react, mongodb", []string{"go", "react", "mongodb"}},
		{"extra commas", ",go,,react,", []string{"go", "react"}},
		{"whitespace only", "  ,  ", []string{}},
		{"empty", "", []string{}},
		{"case preserved", "Go, React", []string{"Go", "React"}},
		{"duplicates kept", "go, go", []string{"go", "go"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tags(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tags(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
