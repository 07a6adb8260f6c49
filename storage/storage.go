package storage

// Keys under which the client persists its session state. These two entries
// are the only durable client-side state and the only mutable state shared
// between execution contexts.
const (
	// TokenKey holds the opaque bearer token string.
	TokenKey = "rf-token"
	// RememberKey holds a stringified boolean controlling whether the
	// session is restored across fresh loads.
	RememberKey = "rf-remember"
)

// Store is a small persisted key/value space modelled on browser storage.
// Readers must treat a missing key as "no session" rather than an error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string)
	Notifier
}

// Notifier is the external notification channel for storage mutations made by
// other execution contexts. Subscribers never hear about their own store's
// writes, matching the host environment's storage-event semantics. The
// returned function unsubscribes and must be called on teardown.
type Notifier interface {
	Subscribe(fn func(key string)) (unsubscribe func())
}
