// Package enidzap provides zap fields holding ENID values.
package enidzap

import (
	"go.uber.org/zap"

	"github.com/outofforest/enid"
)

// ID40 creates a field logging the identifier in its text form. The text is
// produced lazily, only if the entry is actually emitted.
func ID40(key string, id enid.ID40) zap.Field {
	return zap.Stringer(key, id)
}

// ID80 creates a field logging the identifier in its text form.
func ID80(key string, id enid.ID80) zap.Field {
	return zap.Stringer(key, id)
}

// ID creates a field logging the identifier in its text form.
func ID(key string, id enid.ID) zap.Field {
	return zap.Stringer(key, id)
}
