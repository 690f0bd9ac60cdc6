package storemock

import (
	"bytes"
	"io"
	"sync"

	"fieldservice-backend/internal/infrastructure/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps blobs in memory and records every save and delete so tests can
// assert on file lifecycle without touching the filesystem.
type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte

	Saved   []string // keys in save order
	Deleted []string // keys in delete order

	// SaveErr, when set, fails the next Save call and then clears itself.
	SaveErr error
}

func New() *Store {
	return &Store{blobs: map[string][]byte{}}
}

func key(folder, name string) string { return folder + "/" + name }

func (s *Store) Save(folder, name string, r io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		err := s.SaveErr
		s.SaveErr = nil
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	k := key(folder, name)
	s.blobs[k] = data
	s.Saved = append(s.Saved, k)
	return k, nil
}

func (s *Store) Delete(folder, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(folder, name)
	if _, ok := s.blobs[k]; !ok {
		return storage.ErrNotFound
	}
	delete(s.blobs, k)
	s.Deleted = append(s.Deleted, k)
	return nil
}

func (s *Store) Open(folder, name string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key(folder, name)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Store) Exists(folder, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key(folder, name)]
	return ok
}

func (s *Store) URL(folder, name string) string {
	return "http://store.test/storage/" + folder + "/" + name
}

// Len reports how many blobs are currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
