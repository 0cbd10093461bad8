package gen

import (
	"os"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// ManifestName is the incremental-generation manifest kept at the module
// root. It maps package paths to the digests they were last generated from.
const ManifestName = ".approxgen.cache"

type manifestEntry struct {
	Digest      string    `msgpack:"digest"`
	Output      string    `msgpack:"output"`
	GeneratedAt time.Time `msgpack:"generated_at"`
}

// Manifest is safe for concurrent Record calls from parallel generation
// workers.
type Manifest struct {
	path string

	mu      sync.Mutex
	entries map[string]manifestEntry
}

// LoadManifest reads the manifest at path. A missing or corrupt manifest is
// not an error; it simply starts empty and gets rebuilt.
func LoadManifest(path string) *Manifest {
	m := &Manifest{
		path:    path,
		entries: make(map[string]manifestEntry),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	var entries map[string]manifestEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return m
	}
	m.entries = entries
	return m
}

// UpToDate reports whether pkgPath was last generated from digest and the
// recorded output file still carries that digest.
func (m *Manifest) UpToDate(pkgPath, digest string) bool {
	m.mu.Lock()
	entry, ok := m.entries[pkgPath]
	m.mu.Unlock()
	if !ok || entry.Digest != digest {
		return false
	}
	have, err := FileDigest(entry.Output)
	return err == nil && have == digest
}

func (m *Manifest) Record(pkgPath, digest, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[pkgPath] = manifestEntry{
		Digest:      digest,
		Output:      output,
		GeneratedAt: time.Now().UTC(),
	}
}

func (m *Manifest) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := msgpack.Marshal(m.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}
