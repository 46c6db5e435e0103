package scraper

import (
	"strings"
	"testing"
)

func TestSnippetStripsMarkup(t *testing.T) {
	in := `<p>Reinsurer posts <b>record</b> result.</p><img src="x.png"/><script>alert(1)</script>`
	out := Snippet(in)

	if out != "Reinsurer posts record result." {
		t.Fatalf("unexpected snippet: %q", out)
	}
}

func TestSnippetCollapsesWhitespace(t *testing.T) {
	in := "line one\n\n   line\ttwo  "
	out := Snippet(in)

	if out != "line one line two" {
		t.Fatalf("unexpected snippet: %q", out)
	}
}

func TestSnippetEmptyInput(t *testing.T) {
	if out := Snippet("   "); out != "" {
		t.Fatalf("expected empty snippet, got %q", out)
	}
}

func TestSnippetBoundsLength(t *testing.T) {
	in := strings.Repeat("verylongword ", 200)
	out := Snippet(in)

	if len(out) > maxSnippetLen+len("…") {
		t.Fatalf("snippet too long: %d bytes", len(out))
	}
	if !strings.HasSuffix(out, "…") {
		t.Fatalf("expected truncation marker, got %q", out[len(out)-10:])
	}
}
