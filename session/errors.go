package session

import "errors"

var (
	// ErrIO is returned when the session file cannot be read or written.
	ErrIO = errors.New("session: io error")
	// ErrSerialization is returned when the session record cannot be encoded.
	ErrSerialization = errors.New("session: serialization error")
	// ErrDeserialization is returned when the session file is not blank but does not hold a session record.
	ErrDeserialization = errors.New("session: deserialization error")
)
