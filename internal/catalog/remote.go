package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/logging"
	"storefront/internal/models"
)

// RemoteSource fetches a fakestore-compatible JSON product list over
// HTTP. It stays disabled unless a URL is configured; the mock dataset
// is the normal path. One fetch, no retries.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

type remoteProduct struct {
	ID          json.Number    `json:"id"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Rating      *models.Rating `json:"rating"`
}

func (s *RemoteSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (s *RemoteSource) List(ctx context.Context) ([]models.Product, error) {
	l := logging.FromContext(ctx).With("source", "remote")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	res, err := s.client().Do(req)
	if err != nil {
		l.Error("products_fetch_failed", "url", s.URL, "error", err)
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		l.Error("products_fetch_failed", "url", s.URL, "status", res.StatusCode)
		return nil, fmt.Errorf("fetch products: unexpected status %s", res.Status)
	}

	var raw []remoteProduct
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		l.Error("products_fetch_failed", "url", s.URL, "reason", "bad body", "error", err)
		return nil, fmt.Errorf("decode products: %w", err)
	}
	l.Debug("products_fetch_success", "count", len(raw))

	products := make([]models.Product, 0, len(raw))
	for _, rp := range raw {
		count := 5
		if rp.Rating != nil {
			count = rp.Rating.Count
		}
		stock := count - 2
		if stock < 0 {
			stock = 0
		}
		products = append(products, models.Product{
			ID:          rp.ID.String(),
			Title:       rp.Title,
			Price:       rp.Price,
			Description: rp.Description,
			Category:    rp.Category,
			Image:       rp.Image,
			Rating:      rp.Rating,
			Stock:       &stock,
		})
	}
	return products, nil
}

func (s *RemoteSource) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(products, id)
}
