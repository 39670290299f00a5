package domain

// Clock returns the current unix timestamp in seconds.
type Clock interface {
	Now() int64
}
