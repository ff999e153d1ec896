package timeline

import "sort"

// Key identifies one cell of a per-user daily table: which user, which day.
// Every table in cyclefeat is a map keyed by Key.
type Key struct {
	User string
	Date Date
}

// String renders the key as "user@YYYY-MM-DD", used in error context.
func (k Key) String() string { return k.User + "@" + k.Date.String() }

// Less defines the canonical table order: user ascending, then date ascending.
func Less(a, b Key) bool {
	if a.User != b.User {
		return a.User < b.User
	}

	return a.Date < b.Date
}

// SortKeys sorts keys in place into the canonical (user asc, date asc) order.
// All deterministic iteration over cyclefeat tables goes through this.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return Less(keys[i], keys[j]) })
}
