package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// Loader fetches the catalogue document once at startup.
type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{client: &http.Client{Timeout: 10 * time.Second}}
}

// FetchURL retrieves and parses a remote catalogue. Any transport failure or
// non-success status comes back as ErrCatalogLoad so the caller never sees
// partially-populated state.
func (l *Loader) FetchURL(ctx context.Context, url string) (*Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrCatalogLoad, resp.StatusCode, url)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}
	return Parse(body)
}

// LoadFile parses a local catalogue document.
func (l *Loader) LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}
	return Parse(data)
}
