package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

// uploadHeader builds a real multipart.FileHeader the way fiber hands it to
// handlers: by parsing an encoded request body.
func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestLocalStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	url, err := store.Save(uploadHeader(t, "photo.png", "pixels"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q, want /uploads/<uuid>.png", url)
	}
	if path.Base(url) == "photo.png" {
		t.Error("stored under the client-chosen name")
	}

	onDisk := filepath.Join(dir, path.Base(url))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("content = %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("file still on disk after Remove")
	}

	// Gone already, empty url: both fine.
	if err := store.Remove(url); err != nil {
		t.Errorf("repeat Remove: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Errorf("empty Remove: %v", err)
	}
}

func TestLocalStoreUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	first, err := store.Save(uploadHeader(t, "same.jpg", "a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(uploadHeader(t, "same.jpg", "b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Fatalf("two uploads of %q share the url %q", "same.jpg", first)
	}
}
