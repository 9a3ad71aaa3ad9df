// Package session persists the single authentication record of the application.
//
// The record (access token, refresh token and user id) is kept as a compact JSON
// object in `session.json` under the application data directory. A FileStore
// overwrites the file wholesale on every Store call and treats a missing or blank
// file as "no session". Content that is present but cannot be decoded is reported
// as ErrDeserialization rather than silently ignored.
//
// A MemoryStore with the same semantics is provided for tests and for hosts that
// have no writable data directory.
package session
