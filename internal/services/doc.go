// Package services implements HTTP clients for the showtracker backend.
//
// # Tracker
//
// [TrackerService] talks to the media-tracking backend: registration, login,
// the per-user media list, the activity feed, and media create/update/delete.
// The backend reports application failures as non-2xx responses carrying an
// {"error": "..."} body; those are decoded and wrapped in
// [shared.ErrAPIRequest] so the original message reaches the user.
//
// # Catalog
//
// [CatalogService] wraps the backend's TMDB search proxy. TV and movie
// responses use different field names for the same information; Search
// normalizes both into [models.SearchResult] and sorts combined results
// newest first. Requests pass through a token-bucket limiter.
//
// # Image verification
//
// [ImageVerifier] asks the backend whether a poster matches a title. A
// negative verdict is not an error: [VerifyPoster] falls through to a manual
// [Confirmer], and only a cancelled confirmation aborts the save. The TUI
// bridges its confirmation modal through a single-shot [Confirmation];
// CLI flows use [PromptConfirmer] over stdin.
package services
