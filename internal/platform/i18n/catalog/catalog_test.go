package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("id-ID") {
		t.Fatalf("expected locale id-ID")
	}
	if got := len(bundle.NamespaceMessages("en-US", "game")); got == 0 {
		t.Fatalf("expected en-US game namespace messages")
	}
	if got := len(bundle.NamespaceMessages("en-US", "errors")); got == 0 {
		t.Fatalf("expected en-US errors namespace messages")
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle := Default()
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Errorf("locale %s missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/game.yaml"), `locale: "en-US"
namespace: "game"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/errors.yaml"), `locale: "en-US"
namespace: "errors"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/game.yaml"), `locale: "id-ID"
namespace: "game"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/id-ID/game.yaml"), `locale: "id-ID"
namespace: "game"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/game.yaml"), "locale: [\n")

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestLoadFromFSRejectsEmptyDir(t *testing.T) {
	if _, err := LoadFromFS(os.DirFS(t.TempDir())); err == nil {
		t.Fatal("expected no catalog files error")
	}
}

func TestResolve(t *testing.T) {
	bundle := Default()
	tcs := []struct {
		in   string
		want string
	}{
		{in: "", want: "en-US"},
		{in: "en-US", want: "en-US"},
		{in: "id-ID", want: "id-ID"},
		{in: "id", want: "id-ID"},
		{in: "fr-FR", want: "en-US"},
		{in: "not a locale!", want: "en-US"},
	}
	for _, tc := range tcs {
		if got := bundle.Resolve(tc.in); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrinterFormatsRegisteredMessages(t *testing.T) {
	bundle := Default()

	if got := bundle.Printer("en-US").Sprintf("game.prompt", 1, 100); got != "Guess a number between 1 and 100: " {
		t.Fatalf("en-US prompt = %q", got)
	}
	if got := bundle.Printer("id-ID").Sprintf("game.too_low"); got != "Tebakan terlalu rendah!" {
		t.Fatalf("id-ID too low = %q", got)
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	resolved, messages := Default().NamespaceMessagesWithFallback("fr-FR", "errors")
	if resolved != "en-US" {
		t.Fatalf("resolved locale = %q, want en-US", resolved)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback errors namespace messages")
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
