package workforce

import "testing"

func TestParseCategory(t *testing.T) {
	if got := ParseCategory("DIRETO"); got != CategoryDirect {
		t.Fatalf("expected DIRECT, got %s", got)
	}
	if got := ParseCategory("  indireto "); got != CategoryIndirect {
		t.Fatalf("expected INDIRECT, got %s", got)
	}
	if got := ParseCategory("Direto"); got != CategoryDirect {
		t.Fatalf("expected DIRECT for mixed case, got %s", got)
	}
}

func TestParseCategoryUnrecognized(t *testing.T) {
	for _, marker := range []string{"", "TERCEIRO", "???", "estagiario"} {
		if got := ParseCategory(marker); got != CategoryUndefined {
			t.Fatalf("expected UNDEFINED for %q, got %s", marker, got)
		}
	}
}
