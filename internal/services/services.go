// package services defines interfaces for the tracker backend's HTTP surface
package services

import (
	"context"

	"github.com/14-harish/showtracker/internal/models"
)

// Tracker defines the media-tracking backend operations the client depends on.
type Tracker interface {
	// Register creates a new account. The backend enforces uniqueness.
	Register(ctx context.Context, username, email, password string) error

	// Login exchanges credentials for the account identity.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// Media retrieves the user's full media collection. Views re-fetch this
	// on every navigation and filter client-side.
	Media(ctx context.Context, username string) ([]models.MediaRecord, error)

	// Activities retrieves the user's most recent activity entries,
	// newest first.
	Activities(ctx context.Context, username string, limit int) ([]models.Activity, error)

	// AddMedia creates a new media record.
	AddMedia(ctx context.Context, record models.MediaRecord) error

	// UpdateMedia updates an existing record by its ID.
	UpdateMedia(ctx context.Context, record models.MediaRecord) error

	// RemoveMedia deletes a record by ID.
	RemoveMedia(ctx context.Context, id string) error
}

// Catalog searches the external media catalog through the backend proxy.
type Catalog interface {
	// Search queries the catalog. typeFilter is "tv", "movie" or "all";
	// "all" fans out to both types and concatenates. year is optional.
	Search(ctx context.Context, query, typeFilter, year string) ([]models.SearchResult, error)
}

// Verifier performs the automated half of the image verification workflow.
type Verifier interface {
	// Check reports whether the image matches the title. Transport failures
	// and negative verdicts both report false.
	Check(ctx context.Context, title, imageURL string) bool
}

// Confirmer performs the manual half: present the candidate to the user and
// block until they decide. Returns the confirmed URL, or
// [shared.ErrConfirmationCancelled] if the user dismissed the prompt.
type Confirmer interface {
	Confirm(ctx context.Context, title, imageURL string) (string, error)
}
