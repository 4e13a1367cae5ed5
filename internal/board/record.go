package board

import "fmt"

// Category classifies a feedback record. The set is closed: records only
// ever carry one of the four values below.
type Category string

const (
	CategoryUI          Category = "UI"
	CategoryPerformance Category = "Performance"
	CategoryFeature     Category = "Feature"
	CategoryOther       Category = "Other"
)

// Categories returns the full category universe in display order.
// The returned slice is a fresh copy; callers may modify it.
func Categories() []Category {
	return []Category{CategoryUI, CategoryPerformance, CategoryFeature, CategoryOther}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryUI, CategoryPerformance, CategoryFeature, CategoryOther:
		return true
	}
	return false
}

// ParseCategory converts user input to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (valid: UI, Performance, Feature, Other)", s)
	}
	return c, nil
}

// SortMode selects the ordering applied by the derived view.
type SortMode string

const (
	// SortByVotes orders records by vote count, highest first.
	SortByVotes SortMode = "votes"
	// SortByCreated orders records by creation time, newest first.
	SortByCreated SortMode = "created"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	return m == SortByVotes || m == SortByCreated
}

// ParseSortMode converts user input to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown sort mode %q (valid: votes, created)", s)
	}
	return m, nil
}

// Direction is the sign of a vote.
type Direction string

const (
	VoteUp   Direction = "up"
	VoteDown Direction = "down"
)

// ParseDirection converts user input to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case VoteUp:
		return VoteUp, nil
	case VoteDown:
		return VoteDown, nil
	}
	return "", fmt.Errorf("unknown vote direction %q (valid: up, down)", s)
}

// Record is one user-submitted feedback item.
// ID and CreatedAt are assigned at creation and never change; Votes starts
// at zero and is unbounded in both directions. The JSON field names are the
// board's interchange format and must not change.
type Record struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Votes     int      `json:"votes"`
	Category  Category `json:"category"`
	CreatedAt int64    `json:"createdAt"` // milliseconds since epoch
}
