package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"hemline/internal/domain"
	"hemline/internal/repos"
	"hemline/internal/services"
)

// fakeStore counts uploads and fails on the calls listed in failOn (1-based).
type fakeStore struct {
	calls  int
	failOn map[int]bool
}

func (f *fakeStore) Upload(_ context.Context, objectPath string, _ []byte, _ string) (string, error) {
	f.calls++
	if f.failOn[f.calls] {
		return "", fmt.Errorf("upload rejected")
	}
	return "https://cdn.test/" + objectPath, nil
}

func memdbVariants(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE garment_colors(id TEXT PRIMARY KEY, garment_id TEXT, color_id TEXT,
	  image_url TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestRegisterColorsLengthMismatch(t *testing.T) {
	db := memdbVariants(t)
	store := &fakeStore{}
	svc := services.NewVariantService(repos.NewVariantRepo(db), store)

	_, err := svc.RegisterColors(context.Background(), "g-1",
		[]string{"black", "white", "red"},
		[]services.Upload{{Filename: "a.jpg"}, {Filename: "b.jpg"}})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("mismatch must not touch the store, got %d uploads", store.calls)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM garment_colors`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("mismatch must persist nothing, got %d rows", n)
	}
}

func TestRegisterColorsEmptyLists(t *testing.T) {
	db := memdbVariants(t)
	svc := services.NewVariantService(repos.NewVariantRepo(db), &fakeStore{})

	if _, err := svc.RegisterColors(context.Background(), "g-1", nil, nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if _, err := svc.RegisterColors(context.Background(), "", []string{"black"}, []services.Upload{{Filename: "a.jpg"}}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for empty garment id, got %v", err)
	}
}

func TestRegisterColorsPartialSuccess(t *testing.T) {
	db := memdbVariants(t)
	store := &fakeStore{failOn: map[int]bool{2: true}}
	svc := services.NewVariantService(repos.NewVariantRepo(db), store)

	records, err := svc.RegisterColors(context.Background(), "g-1",
		[]string{"black", "white"},
		[]services.Upload{{Filename: "black.jpg"}, {Filename: "white.jpg"}})
	if err != nil {
		t.Fatal(err)
	}
	// second upload failed: exactly the first pair is reported and persisted
	if len(records) != 1 || records[0].ColorID != "black" {
		t.Fatalf("want one record for black, got %+v", records)
	}
	if records[0].ImageURL == "" {
		t.Fatal("record must carry the public url")
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM garment_colors`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want exactly one persisted variant, got %d", n)
	}
	var color string
	if err := db.Get(&color, `SELECT color_id FROM garment_colors`); err != nil {
		t.Fatal(err)
	}
	if color != "black" {
		t.Fatalf("persisted variant should be black, got %s", color)
	}
}
