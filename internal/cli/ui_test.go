package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	st := statusTo(&buf)

	st.success("Generated %d nodes", 7)
	st.warning("Target %s not in tree", "Q")
	st.info("Caching is disabled")
	st.errorf("Render failed")
	st.detail("Directory: %s", "/tmp/algoviz")
	st.file("tree.svg")
	st.keyValue("Path", "A → B")
	st.nextStep("Search it", "algoviz search tree.json --target G")

	out := buf.String()
	for _, want := range []string{
		"Generated 7 nodes",
		"Target Q not in tree",
		"Caching is disabled",
		"Render failed",
		"Directory: /tmp/algoviz",
		"tree.svg",
		"A → B",
		"algoviz search tree.json --target G",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 8 {
		t.Errorf("status wrote %d lines, want 8", got)
	}
}

func TestStatusStats(t *testing.T) {
	tests := []struct {
		cached bool
		want   string
	}{
		{false, iconFresh},
		{true, iconCached},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		statusTo(&buf).stats(7, 6, tt.cached)
		out := buf.String()
		if !strings.Contains(out, "7 nodes") || !strings.Contains(out, "6 edges") || !strings.Contains(out, tt.want) {
			t.Errorf("stats(cached=%v) = %q", tt.cached, out)
		}
	}
}
