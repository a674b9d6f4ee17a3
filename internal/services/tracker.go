// Tracker backend implementation of [Tracker]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
)

// TrackerService implements [Tracker] against the showtracker REST backend.
type TrackerService struct {
	baseURL    string
	httpClient *http.Client
}

var _ Tracker = (*TrackerService)(nil)

// NewTrackerService creates a tracker client for the given base URL.
func NewTrackerService(baseURL string, client *http.Client) *TrackerService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TrackerService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// errorBody is the backend's application-level failure shape.
type errorBody struct {
	Error string `json:"error"`
}

// doRequest performs a JSON request against the backend and decodes the
// response into result when provided.
//
// Non-2xx responses decode the backend's error message so it can be shown to
// the user verbatim.
func (t *TrackerService) doRequest(ctx context.Context, method, path string, body, result any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorBody
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, apiErr.Error)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Register creates a new account.
func (t *TrackerService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all registration fields are required", shared.ErrInvalidInput)
	}

	payload := map[string]string{"username": username, "email": email, "password": password}
	return t.doRequest(ctx, http.MethodPost, "/register", payload, nil)
}

// Login exchanges credentials for the account identity.
func (t *TrackerService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}

	payload := map[string]string{"username": username, "password": password}

	var response struct {
		User models.User `json:"user"`
	}
	if err := t.doRequest(ctx, http.MethodPost, "/login", payload, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return &response.User, nil
}

// Media retrieves the user's full media collection.
func (t *TrackerService) Media(ctx context.Context, username string) ([]models.MediaRecord, error) {
	var response struct {
		Media []models.MediaRecord `json:"media"`
	}

	path := "/media/" + url.PathEscape(username)
	if err := t.doRequest(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	return response.Media, nil
}

// Activities retrieves the user's recent activity, newest first.
func (t *TrackerService) Activities(ctx context.Context, username string, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 5
	}

	var response struct {
		Activities []models.Activity `json:"activities"`
	}

	path := fmt.Sprintf("/activities/%s?limit=%s", url.PathEscape(username), strconv.Itoa(limit))
	if err := t.doRequest(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	return response.Activities, nil
}

// AddMedia creates a new media record.
func (t *TrackerService) AddMedia(ctx context.Context, record models.MediaRecord) error {
	return t.doRequest(ctx, http.MethodPost, "/media", record, nil)
}

// UpdateMedia updates an existing record by its ID.
func (t *TrackerService) UpdateMedia(ctx context.Context, record models.MediaRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record ID required", shared.ErrInvalidInput)
	}
	return t.doRequest(ctx, http.MethodPut, "/media/"+url.PathEscape(record.ID), record, nil)
}

// RemoveMedia deletes a record by ID.
func (t *TrackerService) RemoveMedia(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: record ID required", shared.ErrInvalidInput)
	}
	return t.doRequest(ctx, http.MethodDelete, "/media/"+url.PathEscape(id), nil, nil)
}
