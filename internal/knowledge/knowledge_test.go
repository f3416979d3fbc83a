package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLookupTableOrder(t *testing.T) {
	b := NewBase()
	b.Set("general", "refund", "general refund info")
	b.Set("general", "refund status", "refund status info")

	// Both keywords occur in the query; the earlier table entry wins.
	got := b.Lookup("what is my refund status", "general")
	if got != "general refund info" {
		t.Errorf("Lookup = %q, want first table entry", got)
	}
}

func TestLookupCaseInsensitiveQuery(t *testing.T) {
	b := NewBase()
	b.Set("technical", "internet not working", "restart the router")

	got := b.Lookup("HELP, INTERNET NOT WORKING", "technical")
	if got != "restart the router" {
		t.Errorf("Lookup = %q, want keyword hit", got)
	}
}

func TestLookupMisses(t *testing.T) {
	b := NewBase()
	b.Set("general", "refund status", "refund info")

	if got := b.Lookup("completely unrelated", "general"); got != NoArticleFound {
		t.Errorf("Lookup = %q, want %q", got, NoArticleFound)
	}
	if got := b.Lookup("refund status", "gaming"); got != NoArticleFound {
		t.Errorf("Lookup on unknown domain = %q, want %q", got, NoArticleFound)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	b := Load(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())

	got := b.Lookup("checking my refund status", "general")
	if got != "Refunds typically take 5-7 business days to process. Please provide your order number to check the status." {
		t.Errorf("Lookup = %q, want default refund answer", got)
	}
	if got := b.Lookup("flight status please", "travel"); got == NoArticleFound {
		t.Error("default travel table missing flight status entry")
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b := Load(path, zap.NewNop())

	got := b.Lookup("internet not working", "technical")
	if got != "Please try restarting your router and modem. If the issue persists, check the service status page for your area." {
		t.Errorf("Lookup = %q, want default technical answer", got)
	}
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	doc := `{
  "technical": {
    "zebra problem": "zebra answer",
    "apple problem": "apple answer"
  }
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b := Load(path, zap.NewNop())

	pairs := b.Pairs("technical")
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[0].Question != "zebra problem" || pairs[1].Question != "apple problem" {
		t.Errorf("pairs out of document order: %+v", pairs)
	}

	// A query matching both keywords resolves to the one listed first.
	if got := b.Lookup("zebra problem and apple problem", "technical"); got != "zebra answer" {
		t.Errorf("Lookup = %q, want first listed answer", got)
	}
}

func TestPairsUnknownDomain(t *testing.T) {
	if got := NewBase().Pairs("gaming"); got != nil {
		t.Errorf("Pairs = %v, want nil", got)
	}
}
