package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreUpload(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir, "http://localhost:8081/media/")

	url, err := s.Upload(context.Background(), "garments/123-shirt.jpg", []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://localhost:8081/media/garments/123-shirt.jpg" {
		t.Fatalf("bad url %q", url)
	}
	b, err := os.ReadFile(filepath.Join(dir, "garments", "123-shirt.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "img" {
		t.Fatalf("bad content %q", b)
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	s := NewLocalStore(t.TempDir(), "http://localhost/media")
	if _, err := s.Upload(context.Background(), "../evil.jpg", []byte("x"), ""); err == nil {
		t.Fatal("want traversal rejected")
	}
}

func TestObjectPath(t *testing.T) {
	p := ObjectPath("garments", "photo one.jpg")
	if !strings.HasPrefix(p, "garments/") || !strings.HasSuffix(p, "-photo one.jpg") {
		t.Fatalf("bad path %q", p)
	}
	// directory components in the client filename are stripped
	p = ObjectPath("garments", "../../etc/passwd")
	if strings.Contains(p, "..") {
		t.Fatalf("path must not keep traversal segments, got %q", p)
	}
}
