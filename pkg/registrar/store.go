package registrar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"toolbelt-go/pkg/logging"
)

const (
	definitionsDir = "tools"
	manifestFile   = "manifest.json"
	lockFile       = ".lock"
)

// Manifest is the roster artifact: the ordered list of registered tool
// names the orchestrator loads at startup. Every listed name must have a
// definition file; the reverse is not required (a crash between the two
// writes can leave an orphan definition).
type Manifest struct {
	Tools []string `json:"tools"`
}

// Contains reports whether name is in the roster
func (m Manifest) Contains(name string) bool {
	for _, t := range m.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// Store persists tool definitions and the roster manifest under a data
// directory:
//
//	<dir>/tools/<name>.json   one self-contained definition per tool
//	<dir>/manifest.json       the roster
//
// Both artifacts are written atomically (temp file, fsync, rename) and the
// whole registration sequence is serialized by an in-process mutex plus a
// file lock, so concurrent registrations from any number of processes
// cannot interleave.
type Store struct {
	dir string
	mu  sync.Mutex
	flk *flock.Flock
	log *zap.Logger

	rename func(oldpath, newpath string) error // os.Rename, overridden in tests
}

// NewStore opens (creating if needed) a definition store rooted at dir
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, definitionsDir), 0755); err != nil {
		return nil, fmt.Errorf("%w: creating store directory: %v", ErrPersistence, err)
	}

	return &Store{
		dir:    dir,
		flk:    flock.New(filepath.Join(dir, lockFile)),
		log:    logging.Named("registrar"),
		rename: os.Rename,
	}, nil
}

// Dir returns the store's root directory
func (s *Store) Dir() string { return s.dir }

// DefinitionPath returns the path of the definition file for name
func (s *Store) DefinitionPath(name string) string {
	return filepath.Join(s.dir, definitionsDir, name+".json")
}

// ManifestPath returns the path of the roster manifest
func (s *Store) ManifestPath() string {
	return filepath.Join(s.dir, manifestFile)
}

// lock serializes store mutation within the process and across processes
func (s *Store) lock() error {
	s.mu.Lock()
	if err := s.flk.Lock(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: acquiring store lock: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Store) unlock() {
	_ = s.flk.Unlock()
	s.mu.Unlock()
}

// readManifest loads the roster; a missing file is an empty roster.
// Callers hold the store lock.
func (s *Store) readManifest() (Manifest, error) {
	data, err := os.ReadFile(s.ManifestPath())
	if os.IsNotExist(err) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: reading roster manifest: %v", ErrPersistence, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: parsing roster manifest: %v", ErrPersistence, err)
	}
	return m, nil
}

// writeManifest atomically replaces the roster. Callers hold the store lock.
func (s *Store) writeManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding roster manifest: %v", ErrPersistence, err)
	}
	if err := s.atomicWrite(s.ManifestPath(), data); err != nil {
		return fmt.Errorf("%w: writing roster manifest: %v", ErrPersistence, err)
	}
	return nil
}

// writeDefinition atomically writes the definition file for def.
// Callers hold the store lock.
func (s *Store) writeDefinition(def Definition) error {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding definition %q: %v", ErrPersistence, def.Name, err)
	}
	if err := s.atomicWrite(s.DefinitionPath(def.Name), data); err != nil {
		return fmt.Errorf("%w: writing definition %q: %v", ErrPersistence, def.Name, err)
	}
	return nil
}

// readDefinition loads one definition file. Callers hold the store lock.
func (s *Store) readDefinition(name string) (Definition, error) {
	data, err := os.ReadFile(s.DefinitionPath(name))
	if err != nil {
		return Definition{}, fmt.Errorf("%w: reading definition %q: %v", ErrPersistence, name, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("%w: parsing definition %q: %v", ErrPersistence, name, err)
	}
	return def, nil
}

// atomicWrite replaces path with data via a temp file in the same
// directory, fsync, then rename, so readers never observe a partial
// artifact and a crash leaves either the old content or the new.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := s.rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Load returns the definition for every roster entry, in roster order.
// Roster names whose definition file is missing or unreadable are skipped
// and logged rather than failing the whole load; definition files not in
// the roster are ignored.
func (s *Store) Load() ([]Definition, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.unlock()

	manifest, err := s.readManifest()
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(manifest.Tools))
	for _, name := range manifest.Tools {
		def, err := s.readDefinition(name)
		if err != nil {
			s.log.Warn("skipping roster entry with unusable definition",
				zap.String("name", name),
				zap.Error(err))
			continue
		}
		defs = append(defs, def)
	}

	return defs, nil
}
