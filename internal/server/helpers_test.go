package server

import (
	"testing"
)

func TestHumanizeParam(t *testing.T) {
	cases := []struct {
		param string
		want  string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"requestId", "request ID"},
		{"connectionId", "connection ID"},
		{"circleId", "circle ID"},
		{"targetUserId", "target user ID"},
		{"q", "q"},
	}

	for _, tc := range cases {
		if got := humanizeParam(tc.param); got != tc.want {
			t.Errorf("humanizeParam(%q) = %q, want %q", tc.param, got, tc.want)
		}
	}
}
