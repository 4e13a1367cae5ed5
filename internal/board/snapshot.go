package board

// SnapshotKey is the single key under which the board state is persisted.
const SnapshotKey = "board"

// SnapshotStore provides an interface for snapshot persistence backends.
// The board writes one serialized State under one key after every mutation
// and reads it back once on startup.
type SnapshotStore interface {
	// Load retrieves the snapshot stored under key.
	// ok is false when no snapshot has been saved yet; that is not an error.
	Load(key string) (data []byte, ok bool, err error)

	// Save stores the snapshot under key, replacing any previous value.
	Save(key string, data []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// State is the full persisted snapshot of the board: the records plus the
// view configuration. CategoryFilter lists the categories currently visible;
// a filter equal to the full category universe means "no filter active".
type State struct {
	Records        []Record   `json:"records"`
	SortMode       SortMode   `json:"sortMode"`
	CategoryFilter []Category `json:"categoryFilter"`
	DarkMode       bool       `json:"darkMode"`
}
