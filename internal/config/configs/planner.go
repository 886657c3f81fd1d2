package configs

// Planner tunes the distribution calendar.
type Planner struct {
	// FieldLimit is the largest encoded distribution sent to the record
	// store. The Notion rich text field holds 2000 characters.
	FieldLimit int `env:"FIELD_LIMIT" envDefault:"1900"`
	// HistoryLimit caps the number of snapshots returned by history queries.
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"20"`
}
