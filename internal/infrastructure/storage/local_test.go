package storage

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(t.TempDir(), "http://localhost:8080")
}

func TestLocalStore_SaveOpenDelete(t *testing.T) {
	s := newTestStore(t)

	key, err := s.Save(FolderEmployeeSignatures, "sig.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != FolderEmployeeSignatures+"/sig.png" {
		t.Errorf("key = %q", key)
	}
	if !s.Exists(FolderEmployeeSignatures, "sig.png") {
		t.Fatalf("Exists = false after Save")
	}

	rc, err := s.Open(FolderEmployeeSignatures, "sig.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, _ := io.ReadAll(rc)
	rc.Close()
	if string(got) != "png-bytes" {
		t.Errorf("content = %q", got)
	}

	if err := s.Delete(FolderEmployeeSignatures, "sig.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Exists(FolderEmployeeSignatures, "sig.png") {
		t.Fatalf("Exists = true after Delete")
	}
	if err := s.Delete(FolderEmployeeSignatures, "sig.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestLocalStore_OpenMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Open("part_images/report_1", "nope.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLocalStore_TraversalRejected(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Save("signatures", "../../etc/passwd", strings.NewReader("x")); err == nil {
		t.Fatalf("Save accepted a name with traversal segments")
	}
	if s.Exists("signatures", "../../etc/passwd") {
		t.Fatalf("traversal name resolved inside the storage root")
	}
	if _, err := s.Save("../outside", "f.png", strings.NewReader("x")); err == nil {
		t.Fatalf("Save accepted a folder outside the root")
	}
	if _, err := s.Save("signatures", "..", strings.NewReader("x")); err == nil {
		t.Fatalf("Save accepted a bare dot-dot name")
	}
	if _, err := s.Open("signatures", `a\..\b`); err == nil {
		t.Fatalf("Open accepted a backslash name")
	}
}

func TestLocalStore_URL(t *testing.T) {
	s := newTestStore(t)
	got := s.URL(FolderCustomerSignatures, "a.png")
	want := "http://localhost:8080/storage/" + FolderCustomerSignatures + "/a.png"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
