package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/facility-finder/internal/config"
	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/domain/repository"
	"github.com/facility-finder/internal/pkg/metrics"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// FieldMask - поля, запрашиваемые в nearby/text поиске
const FieldMask = "places.id,places.name,places.displayName,places.types,places.businessStatus," +
	"places.formattedAddress,places.location,places.rating,places.userRatingCount," +
	"places.regularOpeningHours,places.nationalPhoneNumber,places.websiteUri,places.googleMapsUri," +
	"places.photos"

const (
	searchNearbyPath = "/places:searchNearby"
	searchTextPath   = "/places:searchText"
	placesPath       = "/places/"

	maxResponseBytes = 10 << 20
)

// ErrMalformedResponse is returned when the provider answers 2xx with a body that is not JSON.
var ErrMalformedResponse = errors.New("malformed places response")

// StatusError - провайдер ответил не-2xx статусом
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places API error: status %d, body: %s", e.StatusCode, e.Body)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewPlacesClient создает клиент для Places API
func NewPlacesClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: newHTTPClient(cfg),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

func newHTTPClient(cfg *config.PlacesConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	transport.ResponseHeaderTimeout = cfg.ReadTimeout

	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
	}
}

// SearchNearby выполняет поиск мест в окружности
func (c *client) SearchNearby(ctx context.Context, req domain.NearbySearchRequest) ([]byte, error) {
	return c.post(ctx, req.Endpoint(), searchNearbyPath, req)
}

// SearchText выполняет текстовый поиск мест
func (c *client) SearchText(ctx context.Context, req domain.TextSearchRequest) ([]byte, error) {
	return c.post(ctx, req.Endpoint(), searchTextPath, req)
}

// GetPlace возвращает детали одного места
func (c *client) GetPlace(ctx context.Context, req domain.DetailLookupRequest) ([]byte, error) {
	if req.PlaceID == "" {
		return nil, fmt.Errorf("place id cannot be empty")
	}

	fields := req.Fields
	if fields == "" {
		fields = "*"
	}

	// fields is written raw: the provider expects a literal "*".
	uri := fmt.Sprintf("%s%s%s?fields=%s&key=%s",
		c.baseURL,
		placesPath,
		url.PathEscape(req.PlaceID),
		fields,
		url.QueryEscape(c.apiKey),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	return c.do(httpReq, req.Endpoint())
}

func (c *client) post(ctx context.Context, endpoint domain.PlacesEndpoint, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	return c.do(httpReq, endpoint)
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", FieldMask)
}

func (c *client) do(req *http.Request, endpoint domain.PlacesEndpoint) ([]byte, error) {
	label := endpoint.String()

	c.logger.Debug("Calling Places API",
		zap.String("endpoint", label),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeTransport).Inc()
		c.logger.Error("Failed to execute request", zap.String("endpoint", label), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeTransport).Inc()
		c.logger.Error("Failed to read response", zap.String("endpoint", label), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeStatus).Inc()
		c.logger.Error("Places API returned error",
			zap.String("endpoint", label),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeOK).Inc()
		return nil, nil
	}

	if !gjson.ValidBytes(body) {
		metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeDecode).Inc()
		c.logger.Error("Places API returned malformed JSON", zap.String("endpoint", label))
		return nil, fmt.Errorf("failed to decode response: %w", ErrMalformedResponse)
	}

	metrics.ProviderRequests.WithLabelValues(label, metrics.OutcomeOK).Inc()
	c.logger.Debug("Places API call successful",
		zap.String("endpoint", label),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))

	return body, nil
}
