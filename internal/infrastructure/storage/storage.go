// Package storage abstracts the blob store holding signatures and part
// images. Database columns hold (folder, name) keys only; resolving a key to
// a servable URL happens at the response boundary.
package storage

import (
	"errors"
	"io"
)

var ErrNotFound = errors.New("stored file not found")

// Folders used by the report workflows.
const (
	FolderEmployeeSignatures = "signatures/employee_signatures"
	FolderCustomerSignatures = "signatures/customer_signatures"
)

type Store interface {
	// Save writes the content under folder/name and returns the stored key
	// (folder-relative path).
	Save(folder, name string, r io.Reader) (string, error)
	Delete(folder, name string) error
	Open(folder, name string) (io.ReadCloser, error)
	Exists(folder, name string) bool
	// URL returns the public URL for a stored key.
	URL(folder, name string) string
}
