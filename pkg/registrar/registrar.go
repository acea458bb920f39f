// Package registrar creates and persists new HTTP-backed tool definitions
// and maintains the roster manifest the orchestrator reads at startup.
// Registration is a short synchronous operation: validate, write the
// definition file, then update the roster, all under an exclusive lock.
package registrar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Request carries the inputs for one registration
type Request struct {
	Name      string // required, identity of the new tool
	Purpose   string // required, stored verbatim in the definition
	APIURL    string // optional, PlaceholderURL when empty
	APIHost   string // optional, derived from APIURL when empty
	APIKeyEnv string // optional, DefaultKeyEnv when empty
}

// Registrar owns the definition store and the roster
type Registrar struct {
	store    *Store
	reserved func(name string) bool
}

// Option configures a Registrar
type Option func(*Registrar)

// WithReservedNames rejects registrations whose name collides with a
// built-in tool
func WithReservedNames(isReserved func(name string) bool) Option {
	return func(r *Registrar) {
		r.reserved = isReserved
	}
}

// New creates a Registrar over store
func New(store *Store, opts ...Option) *Registrar {
	r := &Registrar{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store returns the underlying definition store
func (r *Registrar) Store() *Store { return r.store }

// Register validates req, persists a new definition, and adds it to the
// roster. Validation happens before any write, so a rejected registration
// never touches the artifacts. The definition file is durably written
// before the roster references it: a crash between the two writes leaves
// at worst an orphan definition, never a roster entry pointing at nothing.
//
// Failures are typed: ErrInvalidName, ErrDuplicateName, ErrMalformedURL,
// ErrPersistence.
func (r *Registrar) Register(req Request) (*Definition, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	if r.reserved != nil && r.reserved(req.Name) {
		return nil, fmt.Errorf("%w: %q is a built-in tool", ErrDuplicateName, req.Name)
	}

	apiURL := req.APIURL
	if apiURL == "" {
		apiURL = PlaceholderURL
	}

	host := req.APIHost
	if host == "" {
		derived, err := DeriveHost(apiURL)
		if err != nil {
			return nil, err
		}
		host = derived
	}

	keyEnv := req.APIKeyEnv
	if keyEnv == "" {
		keyEnv = DefaultKeyEnv
	}

	def := Definition{
		Name:      req.Name,
		Purpose:   req.Purpose,
		APIURL:    apiURL,
		APIHost:   host,
		APIKeyEnv: keyEnv,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.store.lock(); err != nil {
		return nil, err
	}
	defer r.store.unlock()

	manifest, err := r.store.readManifest()
	if err != nil {
		return nil, err
	}
	if manifest.Contains(def.Name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
	}

	// Definition first, then roster. An orphan definition file from an
	// earlier crash is overwritten here, which is the atomic-replace path.
	if err := r.store.writeDefinition(def); err != nil {
		return nil, err
	}

	manifest.Tools = append(manifest.Tools, def.Name)
	if err := r.store.writeManifest(manifest); err != nil {
		return nil, err
	}

	r.store.log.Info("registered tool",
		zap.String("name", def.Name),
		zap.String("api_host", def.APIHost),
		zap.String("api_key_env", def.APIKeyEnv))

	return &def, nil
}
