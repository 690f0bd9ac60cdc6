package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps files on the local filesystem under root. Folder and name
// components are sanitized against path traversal before touching the disk.
type LocalStore struct {
	root    string
	baseURL string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// path resolves folder/name under root. Folders may nest, but both parts
// must survive Clean unchanged and names carry no separators, so the key
// returned by Save always resolves back to the file it wrote.
func (s *LocalStore) path(folder, name string) (string, error) {
	if folder == "" || filepath.Clean("/"+folder) != "/"+folder ||
		name == "" || strings.ContainsAny(name, `/\`) || filepath.Clean("/"+name) != "/"+name {
		return "", fmt.Errorf("invalid storage key %q/%q", folder, name)
	}
	return filepath.Join(s.root, folder, name), nil
}

func (s *LocalStore) Save(folder, name string, r io.Reader) (string, error) {
	p, err := s.path(folder, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(p)
		return "", fmt.Errorf("write stored file: %w", err)
	}
	return folder + "/" + name, nil
}

func (s *LocalStore) Delete(folder, name string) error {
	p, err := s.path(folder, name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *LocalStore) Open(folder, name string) (io.ReadCloser, error) {
	p, err := s.path(folder, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStore) Exists(folder, name string) bool {
	p, err := s.path(folder, name)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

func (s *LocalStore) URL(folder, name string) string {
	return s.baseURL + "/storage/" + folder + "/" + name
}
