package registrar

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
)

func newTestRegistrar(t *testing.T) (*Registrar, *Store) {
	t.Helper()

	dir, err := os.MkdirTemp("", "registrar-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	return New(store), store
}

func TestRegisterNewTool(t *testing.T) {
	reg, store := newTestRegistrar(t)

	def, err := reg.Register(Request{
		Name:    "stock_price",
		Purpose: "Look up the latest stock price for a ticker symbol",
		APIURL:  "https://api.example.com/v1/data",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Derived and defaulted fields
	if def.APIHost != "api.example.com" {
		t.Errorf("Expected derived host 'api.example.com', got %q", def.APIHost)
	}
	if def.APIKeyEnv != DefaultKeyEnv {
		t.Errorf("Expected default key env %q, got %q", DefaultKeyEnv, def.APIKeyEnv)
	}
	if def.CreatedAt.IsZero() {
		t.Errorf("Expected CreatedAt to be set")
	}

	// Exactly one definition file and one roster entry
	if _, err := os.Stat(store.DefinitionPath("stock_price")); err != nil {
		t.Errorf("Expected definition file to exist: %v", err)
	}
	manifest, err := store.readManifest()
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	if len(manifest.Tools) != 1 || manifest.Tools[0] != "stock_price" {
		t.Errorf("Expected roster [stock_price], got %v", manifest.Tools)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	reg, store := newTestRegistrar(t)

	req := Request{
		Name:    "stock_price",
		Purpose: "Look up stock prices",
		APIURL:  "https://api.example.com/v1/data",
	}
	if _, err := reg.Register(req); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	manifestBefore, err := os.ReadFile(store.ManifestPath())
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	defBefore, err := os.ReadFile(store.DefinitionPath("stock_price"))
	if err != nil {
		t.Fatalf("Failed to read definition: %v", err)
	}

	_, err = reg.Register(req)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}

	// Rejected call must leave both artifacts untouched
	manifestAfter, _ := os.ReadFile(store.ManifestPath())
	if !bytes.Equal(manifestBefore, manifestAfter) {
		t.Errorf("Manifest changed after rejected registration")
	}
	defAfter, _ := os.ReadFile(store.DefinitionPath("stock_price"))
	if !bytes.Equal(defBefore, defAfter) {
		t.Errorf("Definition changed after rejected registration")
	}
}

func TestRegisterMalformedURL(t *testing.T) {
	reg, store := newTestRegistrar(t)

	_, err := reg.Register(Request{
		Name:    "broken_tool",
		Purpose: "This should never be persisted",
		APIURL:  "notaurl",
	})
	if !errors.Is(err, ErrMalformedURL) {
		t.Fatalf("Expected ErrMalformedURL, got %v", err)
	}

	// Nothing may have been written
	if _, err := os.Stat(store.DefinitionPath("broken_tool")); !os.IsNotExist(err) {
		t.Errorf("Expected no definition file, stat returned %v", err)
	}
	if _, err := os.Stat(store.ManifestPath()); !os.IsNotExist(err) {
		t.Errorf("Expected no manifest file, stat returned %v", err)
	}
}

func TestRegisterExplicitHostSkipsDerivation(t *testing.T) {
	reg, _ := newTestRegistrar(t)

	// An explicit host means the URL is passed through verbatim, even when
	// the host could not be derived from it
	def, err := reg.Register(Request{
		Name:    "custom_host",
		Purpose: "Uses an explicit host header",
		APIURL:  "notaurl",
		APIHost: "override.example.com",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if def.APIHost != "override.example.com" {
		t.Errorf("Expected explicit host to win, got %q", def.APIHost)
	}
	if def.APIURL != "notaurl" {
		t.Errorf("Expected URL to pass through verbatim, got %q", def.APIURL)
	}
}

func TestRegisterPlaceholderURL(t *testing.T) {
	reg, _ := newTestRegistrar(t)

	def, err := reg.Register(Request{
		Name:    "stub_tool",
		Purpose: "No endpoint yet",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if def.APIURL != PlaceholderURL {
		t.Errorf("Expected placeholder URL, got %q", def.APIURL)
	}
	if def.APIHost != "example.com" {
		t.Errorf("Expected host derived from placeholder, got %q", def.APIHost)
	}
}

func TestRegisterInvalidName(t *testing.T) {
	reg, _ := newTestRegistrar(t)

	testCases := []struct {
		name     string
		toolName string
	}{
		{"Empty", ""},
		{"Leading digit", "9lives"},
		{"Uppercase", "StockPrice"},
		{"Spaces", "stock price"},
		{"Dashes", "stock-price"},
		{"Too long", strings.Repeat("a", 64)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.Register(Request{Name: tc.toolName, Purpose: "p"})
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("Expected ErrInvalidName for %q, got %v", tc.toolName, err)
			}
		})
	}
}

func TestRegisterReservedName(t *testing.T) {
	dir, err := os.MkdirTemp("", "registrar-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	reg := New(store, WithReservedNames(func(name string) bool {
		return name == "current_weather"
	}))

	_, err = reg.Register(Request{Name: "current_weather", Purpose: "p"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName for built-in collision, got %v", err)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	reg, store := newTestRegistrar(t)

	names := []string{"alpha_tool", "beta_tool"}
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			_, errs[i] = reg.Register(Request{
				Name:    name,
				Purpose: "Concurrent registration test",
				APIURL:  "https://api.example.com/v1/data",
			})
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Registration of %q failed: %v", names[i], err)
		}
	}

	// No lost update: both names present in roster and store
	manifest, err := store.readManifest()
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	if len(manifest.Tools) != 2 {
		t.Fatalf("Expected 2 roster entries, got %v", manifest.Tools)
	}
	for _, name := range names {
		if !manifest.Contains(name) {
			t.Errorf("Roster missing %q", name)
		}
		if _, err := os.Stat(store.DefinitionPath(name)); err != nil {
			t.Errorf("Definition file missing for %q: %v", name, err)
		}
	}
}

func TestDeriveHost(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		expected    string
		expectError bool
	}{
		{"Standard URL", "https://api.example.com/v1/data", "api.example.com", false},
		{"Host only", "https://api.example.com", "api.example.com", false},
		{"No scheme", "notaurl", "", true},
		{"Empty host segment", "https:///v1/data", "", true},
		{"Empty string", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			host, err := DeriveHost(tc.url)
			if tc.expectError {
				if !errors.Is(err, ErrMalformedURL) {
					t.Errorf("Expected ErrMalformedURL for %q, got %v", tc.url, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", tc.url, err)
				return
			}
			if host != tc.expected {
				t.Errorf("Expected host %q, got %q", tc.expected, host)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"a", "weather", "stock_price", "tool2", "x_" + strings.Repeat("y", 60)}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("Expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{"", "_tool", "2tool", "Tool", "my-tool", "my tool", strings.Repeat("z", 64)}
	for _, name := range invalid {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Expected %q to be invalid, got %v", name, err)
		}
	}
}
