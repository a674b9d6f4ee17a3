// Package repositories implements SQLite persistence for client-side state.
//
// The tracker backend owns all media data; the only thing the client persists
// locally is the logged-in session. [SessionRepository] keeps a single session
// row and treats an absent or unreadable row as logged out, clearing corrupt
// state on load rather than failing startup.
package repositories
