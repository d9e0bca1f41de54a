// Package enidzerolog integrates ENID values with zerolog events.
package enidzerolog

import (
	"github.com/rs/zerolog"

	"github.com/outofforest/enid"
)

// ID40 appends the identifier's text form to the event under key.
func ID40(e *zerolog.Event, key string, id enid.ID40) *zerolog.Event {
	return e.Str(key, id.String())
}

// ID80 appends the identifier's text form to the event under key.
func ID80(e *zerolog.Event, key string, id enid.ID80) *zerolog.Event {
	return e.Str(key, id.String())
}

// ID appends the identifier's text form to the event under key.
func ID(e *zerolog.Event, key string, id enid.ID) *zerolog.Event {
	return e.Str(key, id.String())
}

// Obj wraps an identifier for use with zerolog's Object and EmbedObject
// helpers.
type Obj struct {
	Key string
	ID  enid.ID
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (o Obj) MarshalZerologObject(e *zerolog.Event) {
	e.Str(o.Key, o.ID.String())
}
