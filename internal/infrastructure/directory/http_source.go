// Package directory provides credential directory implementations.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/carelink/portal-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// HTTPSource fetches the credential document from a fixed URL serving the
// role-partitioned JSON fixture. Any transport failure, non-2xx response, or
// unparseable body maps to ErrStoreUnavailable.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (*domain.CredentialDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrStoreUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrStoreUnavailable, resp.StatusCode)
	}

	var doc domain.CredentialDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", domain.ErrStoreUnavailable, err)
	}
	return &doc, nil
}
