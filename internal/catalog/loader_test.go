package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","type":"Lakhnavi","color":"Maroon",
			"pricing":{"Mens":{"M":{"listPrice":600,"salePrice":450}}}}]`))
	}))
	defer srv.Close()

	ix, err := NewLoader().FetchURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchURL: %v", err)
	}
	if ix.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ix.Len())
	}
}

func TestFetchURLNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewLoader().FetchURL(context.Background(), srv.URL); !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("want ErrCatalogLoad, got %v", err)
	}
}

func TestFetchURLUnreachable(t *testing.T) {
	if _, err := NewLoader().FetchURL(context.Background(), "http://127.0.0.1:1/catalog.json"); !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("want ErrCatalogLoad, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := NewLoader().LoadFile("does-not-exist.json"); !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("want ErrCatalogLoad, got %v", err)
	}
}
