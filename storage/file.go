package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rfonline/rfclient/internal/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore persists the key/value state as a small JSON file. It is the CLI
// stand-in for browser storage; the file holds only the token and remember
// flag. Instances in the same process share notifications through a Bus when
// constructed with NewFileWithBus.
type FileStore struct {
	path string
	bus  *Bus
	mu   sync.Mutex
}

func NewFile(path string) *FileStore {
	return &FileStore{path: path, bus: NewBus()}
}

// NewFileWithBus creates a file store whose mutations are announced on the
// given bus, so another store over the same file can react to them.
func NewFileWithBus(path string, bus *Bus) *FileStore {
	return &FileStore{path: path, bus: bus}
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data := fs.read()
	v, ok := data[key]
	return v, ok
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	data := fs.read()
	data[key] = value
	err := fs.write(data)
	fs.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "storage.FileStore.Set")
	}
	fs.bus.Publish(fs, key)
	return nil
}

// Delete is best effort: a file that cannot be rewritten leaves the caller no
// worse off than before, and logout must never fail.
func (fs *FileStore) Delete(key string) {
	fs.mu.Lock()
	data := fs.read()
	_, existed := data[key]
	delete(data, key)
	var err error
	if existed {
		err = fs.write(data)
	}
	fs.mu.Unlock()
	if existed && err == nil {
		fs.bus.Publish(fs, key)
	}
}

func (fs *FileStore) Subscribe(fn func(key string)) func() {
	return fs.bus.Subscribe(fs, fn)
}

func (fs *FileStore) read() map[string]string {
	data := make(map[string]string)
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return data
	}
	// A corrupt file reads as empty: missing state means "no session".
	_ = json.Unmarshal(raw, &data)
	return data
}

func (fs *FileStore) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(fs.path, raw, 0o600)
}
