package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/podolabs/frontdesk/internal/domain"
)

const defaultFetchTimeout = 15 * time.Second

// Embedder turns a row's detail text into a vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Loader fetches department rows from the sheet endpoint (an Apps-Script
// style URL returning {"<sheet>": [row, ...]}) and computes detail vectors
// for every row except the catch-all category.
type Loader struct {
	httpClient *http.Client
	embedder   Embedder
	endpoint   string
	sheet      string
	secret     string
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	Endpoint   string
	Sheet      string
	Secret     string
	Embedder   Embedder
	HTTPClient *http.Client
}

// NewLoader creates a Loader.
func NewLoader(cfg LoaderConfig) *Loader {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	sheet := cfg.Sheet
	if sheet == "" {
		sheet = "manager"
	}
	return &Loader{
		httpClient: httpClient,
		embedder:   cfg.Embedder,
		endpoint:   cfg.Endpoint,
		sheet:      sheet,
		secret:     cfg.Secret,
	}
}

// Fetch loads the sheet and embeds row details. Transport and parse
// failures return an empty slice and are logged by the caller; this method
// never panics past the boundary. Rows whose detail embedding fails are
// kept without a vector and the classifier skips them.
func (l *Loader) Fetch(ctx context.Context) ([]domain.DepartmentRow, error) {
	if l.endpoint == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "no sheet endpoint configured")
	}

	rows, err := l.fetchRows(ctx)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeUpstream, "department sheet fetch failed", err)
	}

	for i := range rows {
		if domain.ParseCategory(rows[i].Category).IsCatchAll() {
			// catch-all detail text is generic; never compared
			continue
		}
		vec, err := l.embedder.GenerateEmbedding(ctx, rows[i].Detail)
		if err != nil {
			log.Printf("directory: detail embedding failed for %q: %v", rows[i].Category, err)
			continue
		}
		rows[i].DetailVector = vec
	}

	return rows, nil
}

func (l *Loader) fetchRows(ctx context.Context) ([]domain.DepartmentRow, error) {
	u, err := url.Parse(l.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet endpoint: %w", err)
	}
	q := u.Query()
	q.Set("sheet", l.sheet)
	q.Set("secret", l.secret)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: endpoint returned status %d", domain.ErrSheetUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}

	var payload map[string][]domain.DepartmentRow
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse sheet response: %w", err)
	}

	return payload[l.sheet], nil
}

// Load fetches rows into dst, degrading to an empty directory on failure.
// Returns the number of rows loaded.
func Load(ctx context.Context, l *Loader, dst *Directory) int {
	rows, err := l.Fetch(ctx)
	if err != nil {
		log.Printf("directory: load failed, directory left empty: %v", err)
		rows = nil
	}
	dst.Replace(rows)
	log.Printf("directory: loaded %d rows", len(rows))
	return len(rows)
}
