// Package models defines domain entities for the showtracker client.
//
// The package contains two categories of types:
//
// 1. Persistent records owned by the tracker backend:
//   - [User] : the authenticated account, mirrored into the local session store
//   - [MediaRecord] : a tracked TV show or movie with status and progress fields
//   - [Activity] : a read-only audit entry rendered on the dashboard
//
// 2. Transient shapes:
//   - [SearchResult] : a catalog match normalized from the heterogeneous
//     TMDB TV/movie response shapes; discarded once converted into a
//     [MediaRecord] through the add flow
//
// Filtering helpers derive the named view subsets (TV by status, movies by
// status, continue watching) from a full media list; the client re-fetches the
// list on every navigation and never caches it.
package models
