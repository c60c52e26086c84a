// Package utils provides small type-conversion helpers for values decoded
// from JSON payloads, where numbers arrive as float64 and identifiers may be
// strings or bytes depending on the producing client.
package utils
