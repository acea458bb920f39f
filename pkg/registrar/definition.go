package registrar

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultKeyEnv is the environment variable consulted for the API key
	// when a definition does not name its own
	DefaultKeyEnv = "RAPIDAPI_KEY"

	// PlaceholderURL is used when a definition is registered without an
	// endpoint, so the generated tool is callable and obviously fake
	PlaceholderURL = "https://example.com/api"
)

// validName matches usable tool identifiers: lowercase snake_case, starting
// with a letter, at most 63 characters
var validName = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// Definition describes one dynamically registered HTTP tool. Definitions are
// created once and never mutated in place; the name is the identity.
type Definition struct {
	Name      string    `json:"name"`
	Purpose   string    `json:"purpose"`
	APIURL    string    `json:"api_url"`
	APIHost   string    `json:"api_host"`
	APIKeyEnv string    `json:"api_key_env"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateName reports whether name can identify a tool
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q must be lowercase snake_case starting with a letter", ErrInvalidName, name)
	}
	return nil
}

// DeriveHost extracts the network-location segment of rawURL, the value sent
// as the API host header. The URL must have at least three '/'-delimited
// segments (scheme, empty, host) and a non-empty host.
func DeriveHost(rawURL string) (string, error) {
	parts := strings.Split(rawURL, "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", fmt.Errorf("%w: cannot derive host from %q", ErrMalformedURL, rawURL)
	}
	return parts[2], nil
}
