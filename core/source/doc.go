// Package source fetches entries from the content backend and feeds them
// through the flattener.
//
// The backend is opaque behind the ContentSource interface; the package
// ships a thin HTTP delivery-API client implementing it. The Fetcher pages
// through all entries of a content type (optionally restricted to one entry
// id), accumulating every page before flattening so the total count stays
// consistent, then yields the complete flat document set.
//
// Any page failure fails the whole fetch; no partial results are returned.
package source
