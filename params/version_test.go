package params

import "testing"

func TestVersionWithCommit(t *testing.T) {
	tests := []struct {
		commit, date string
		want         string
	}{
		{"", "", VersionWithMeta},
		{"abc", "", VersionWithMeta},
		{"0123456789abcdef", "", VersionWithMeta + "-01234567"},
		{"0123456789abcdef", "20260101", VersionWithMeta + "-01234567-20260101"},
	}
	for _, tt := range tests {
		if got := VersionWithCommit(tt.commit, tt.date); got != tt.want {
			t.Errorf("VersionWithCommit(%q, %q) = %q, want %q", tt.commit, tt.date, got, tt.want)
		}
	}
}
