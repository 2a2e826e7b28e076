package theme

import (
	"strings"
	"testing"
)

func TestBannerNamesTheApp(t *testing.T) {
	b := Banner()
	if !strings.Contains(b, "HAPPY AFRICA") {
		t.Fatalf("banner missing title: %q", b)
	}
	if !strings.HasSuffix(b, "\n") {
		t.Fatalf("banner should end with a newline")
	}
}
