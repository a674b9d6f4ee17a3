// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/14-harish/showtracker/internal/models"
)

// MockTracker is a test double for the tracker backend client.
//
// Each operation delegates to its function field when set and otherwise
// succeeds with zero values.
type MockTracker struct {
	RegisterFn    func(ctx context.Context, username, email, password string) error
	LoginFn       func(ctx context.Context, username, password string) (*models.User, error)
	MediaFn       func(ctx context.Context, username string) ([]models.MediaRecord, error)
	ActivitiesFn  func(ctx context.Context, username string, limit int) ([]models.Activity, error)
	AddMediaFn    func(ctx context.Context, record models.MediaRecord) error
	UpdateMediaFn func(ctx context.Context, record models.MediaRecord) error
	RemoveMediaFn func(ctx context.Context, id string) error
}

func (m *MockTracker) Register(ctx context.Context, username, email, password string) error {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, email, password)
	}
	return nil
}

func (m *MockTracker) Login(ctx context.Context, username, password string) (*models.User, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return &models.User{Username: username}, nil
}

func (m *MockTracker) Media(ctx context.Context, username string) ([]models.MediaRecord, error) {
	if m.MediaFn != nil {
		return m.MediaFn(ctx, username)
	}
	return nil, nil
}

func (m *MockTracker) Activities(ctx context.Context, username string, limit int) ([]models.Activity, error) {
	if m.ActivitiesFn != nil {
		return m.ActivitiesFn(ctx, username, limit)
	}
	return nil, nil
}

func (m *MockTracker) AddMedia(ctx context.Context, record models.MediaRecord) error {
	if m.AddMediaFn != nil {
		return m.AddMediaFn(ctx, record)
	}
	return nil
}

func (m *MockTracker) UpdateMedia(ctx context.Context, record models.MediaRecord) error {
	if m.UpdateMediaFn != nil {
		return m.UpdateMediaFn(ctx, record)
	}
	return nil
}

func (m *MockTracker) RemoveMedia(ctx context.Context, id string) error {
	if m.RemoveMediaFn != nil {
		return m.RemoveMediaFn(ctx, id)
	}
	return nil
}

// MockCatalog is a test double for the catalog search client.
type MockCatalog struct {
	SearchFn func(ctx context.Context, query, typeFilter, year string) ([]models.SearchResult, error)
}

func (m *MockCatalog) Search(ctx context.Context, query, typeFilter, year string) ([]models.SearchResult, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query, typeFilter, year)
	}
	return nil, nil
}

// MockVerifier returns a fixed verdict.
type MockVerifier struct {
	Verdict bool
	Calls   int
}

func (m *MockVerifier) Check(ctx context.Context, title, imageURL string) bool {
	m.Calls++
	return m.Verdict
}

// MockConfirmer resolves manual confirmation with a scripted outcome.
type MockConfirmer struct {
	URL   string
	Err   error
	Calls int

	// Echo returns the candidate URL unchanged instead of URL.
	Echo bool
}

func (m *MockConfirmer) Confirm(ctx context.Context, title, imageURL string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if m.Echo {
		return imageURL, nil
	}
	return m.URL, nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
