package domain

// Department groups users for reporting purposes.
type Department struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
