package domain

import "time"

// Record is an archived conversion: the source markup, its tree in the
// JSON interchange form, and the tree's statistics.
type Record struct {
	ID        string
	Name      string
	Source    string
	Tree      string
	Stats     Stats
	CreatedAt time.Time
}
