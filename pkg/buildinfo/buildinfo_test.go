package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"full sha", "0123456789abcdef", "{{.Name}} v1.2.3 (commit 0123456, built 2026-01-02)\n"},
		{"short sha", "abc", "{{.Name}} v1.2.3 (commit abc, built 2026-01-02)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = "v1.2.3", tt.commit, "2026-01-02"
			if got := Template(); got != tt.want {
				t.Errorf("Template() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, key := range []string{"version: ", "commit: ", "built: "} {
		if !strings.Contains(s, key) {
			t.Errorf("String() missing %q: %q", key, s)
		}
	}
}
