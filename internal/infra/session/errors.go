package session

import "errors"

var (
	// ErrSessionNotFound is returned when the session id is unknown or
	// the session has expired
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrEncode is returned when serializing the session state fails
	ErrEncode = errors.New("session.store: failed to encode state")

	// ErrDecode is returned when deserializing the session state fails
	ErrDecode = errors.New("session.store: failed to decode state")

	// ErrRedis is returned on Redis transport errors
	ErrRedis = errors.New("session.store: redis error")
)
