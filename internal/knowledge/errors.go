package knowledge

import "errors"

// ErrConfiguration is returned when a topic set cannot be turned into a store.
// Callers match it with errors.Is; the wrapped message names the offending topic.
var ErrConfiguration = errors.New("invalid knowledge configuration")
