package domain

// Item is a single inventory entry. Price is carried as a decimal string to
// avoid float rounding between the numeric column and the JSON payload.
type Item struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Description  *string `json:"description,omitempty"`
	Quantity     int32   `json:"quantity"`
	Price        string  `json:"price"`
	ReorderPoint *int32  `json:"reorder_point,omitempty"`
	Category     *string `json:"category,omitempty"`
}

// BelowReorderPoint reports whether stock has fallen to or under the reorder
// threshold. Items without a threshold never report low stock.
func (i *Item) BelowReorderPoint() bool {
	return i.ReorderPoint != nil && i.Quantity <= *i.ReorderPoint
}
