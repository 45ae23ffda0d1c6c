package aoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestInputSourceCaches(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		if r.URL.Path != "/2024/day/5/input" {
			http.NotFound(w, r)
			return
		}
		c, err := r.Cookie("session")
		if err != nil || c.Value != "secret" {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}
		w.Write([]byte("1 2 3\n"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := &InputSource{
		Client:   srv.Client(),
		BaseURL:  srv.URL,
		Year:     2024,
		Session:  "secret",
		CacheDir: filepath.Join(dir, "aoc2024"),
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		got, err := s.Get(ctx, 5)
		if err != nil {
			t.Fatal(err)
		}
		if got != "1 2 3\n" {
			t.Errorf("Get = %q", got)
		}
	}
	if fetches != 1 {
		t.Errorf("fetched %d times, want 1", fetches)
	}
	b, err := os.ReadFile(filepath.Join(dir, "aoc2024", "5"))
	if err != nil || string(b) != "1 2 3\n" {
		t.Errorf("cache file = %q, %v", b, err)
	}

	if _, err := s.Get(ctx, 6); err == nil {
		t.Error("Get of missing day succeeded")
	}
	if _, err := os.Stat(filepath.Join(dir, "aoc2024", "6")); !os.IsNotExist(err) {
		t.Errorf("failed fetch was cached: %v", err)
	}
}

func TestInputSourceNoSession(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "3"), []byte("cached"), 0600)
	s := &InputSource{BaseURL: "http://127.0.0.1:0", Year: 2024, CacheDir: dir}
	got, err := s.Get(context.Background(), 3)
	if err != nil || got != "cached" {
		t.Errorf("Get(3) = %q, %v", got, err)
	}
	if _, err := s.Get(context.Background(), 4); err == nil {
		t.Error("fetch without a session succeeded")
	}
}

func TestFileInputs(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	os.WriteFile(p, []byte("abc"), 0600)
	if got, err := FileInputs(p).Get(context.Background(), 12); err != nil || got != "abc" {
		t.Errorf("Get = %q, %v", got, err)
	}
	if _, err := FileInputs(p + ".missing").Get(context.Background(), 12); err == nil {
		t.Error("missing file succeeded")
	}
}
