// Catalog search proxy implementation of [Catalog]
//
// The proxy forwards to TMDB; raw item shapes follow
// https://developer.themoviedb.org/reference/search-tv and search-movie.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
	"golang.org/x/time/rate"
)

// CatalogService implements [Catalog] against the backend's TMDB search proxy.
type CatalogService struct {
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

var _ Catalog = (*CatalogService)(nil)

// NewCatalogService creates a catalog client.
//
// requestsPerSecond caps the proxy request rate; values <= 0 fall back to 4.
func NewCatalogService(baseURL, imageBaseURL string, requestsPerSecond float64, client *http.Client) *CatalogService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if imageBaseURL == "" {
		imageBaseURL = "https://image.tmdb.org/t/p/w500"
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 4
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &CatalogService{
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		httpClient:   client,
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// catalogItem is the raw proxy result shape. TV and movie variants use
// different field names for title and date; both sets are declared and the
// media type picks which pair applies.
type catalogItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`           // TV
	FirstAirDate string `json:"first_air_date"` // TV
	Title        string `json:"title"`          // movies
	ReleaseDate  string `json:"release_date"`   // movies
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
}

// Search queries the catalog proxy.
//
// typeFilter "all" issues one request per concrete type and concatenates the
// results; any failed request fails the whole search so partial results are
// never shown. Combined results are ordered newest first.
func (c *CatalogService) Search(ctx context.Context, query, typeFilter, year string) ([]models.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query required", shared.ErrInvalidInput)
	}

	var searchTypes []models.MediaType
	switch typeFilter {
	case "", "all":
		searchTypes = []models.MediaType{models.TypeTV, models.TypeMovie}
	case string(models.TypeTV):
		searchTypes = []models.MediaType{models.TypeTV}
	case string(models.TypeMovie):
		searchTypes = []models.MediaType{models.TypeMovie}
	default:
		return nil, fmt.Errorf("%w: unknown media type %q", shared.ErrInvalidFlag, typeFilter)
	}

	var combined []models.SearchResult
	for _, mediaType := range searchTypes {
		items, err := c.searchType(ctx, query, mediaType, year)
		if err != nil {
			return nil, err
		}
		combined = append(combined, items...)
	}

	models.SortByYearDesc(combined)
	return combined, nil
}

func (c *CatalogService) searchType(ctx context.Context, query string, mediaType models.MediaType, year string) ([]models.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("media_type", string(mediaType))
	params.Set("query", query)
	if year != "" {
		params.Set("year", year)
	}

	endpoint := c.baseURL + "/api/tmdb/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: catalog search status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var response struct {
		Results []catalogItem `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(response.Results))
	for _, item := range response.Results {
		results = append(results, c.normalize(item, mediaType))
	}

	return results, nil
}

// normalize maps a raw catalog item into the common result shape.
func (c *CatalogService) normalize(item catalogItem, mediaType models.MediaType) models.SearchResult {
	title := item.Title
	date := item.ReleaseDate
	if mediaType == models.TypeTV {
		title = item.Name
		date = item.FirstAirDate
	}

	year := "Unknown"
	if len(date) >= 4 {
		year = date[:4]
	}

	poster := ""
	if item.PosterPath != "" {
		poster = c.imageBaseURL + item.PosterPath
	}

	return models.SearchResult{
		ID:         fmt.Sprintf("%s-%d", mediaType, item.ID),
		TMDBID:     item.ID,
		Type:       mediaType,
		Title:      title,
		Year:       year,
		Overview:   item.Overview,
		PosterPath: poster,
	}
}
