package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Order embeds product snapshots taken at creation time, not live
// references into the product collection.
type Order struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Products []Product `json:"products"`
	Total    float64   `json:"total"`
	Status   Status    `json:"status"`
}
