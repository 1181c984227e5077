package dto

// InsertionSummary reports the outcome of one insert run
type InsertionSummary struct {
	Variable   string `json:"variable"`
	PagePath   string `json:"page_path"`
	Parsed     int    `json:"parsed"`
	Skipped    int    `json:"skipped"`
	Inserted   int    `json:"inserted"`
	PriorTotal int    `json:"prior_total"`
	NewTotal   int    `json:"new_total"`
	BackupPath string `json:"backup_path,omitempty"`
}

// InsertionPreview carries the emitted lines without touching the page
type InsertionPreview struct {
	Variable string   `json:"variable"`
	Parsed   int      `json:"parsed"`
	Skipped  int      `json:"skipped"`
	Lines    []string `json:"lines"`
}
