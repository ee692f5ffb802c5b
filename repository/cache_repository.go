package repository

// CacheRepository holds short-lived per-user state, currently the last
// rendered calculation awaiting a save/download/ask follow-up.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
