package usecase

// Published on order creation.
type OrderCreatedMsg struct {
	OrderID string  `json:"orderId"`
	UserID  string  `json:"userId"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}

// Sent by the fulfilment pipeline on Kafka.
type OrderStatusChangedMsg struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Status  string `json:"status"` // e.g. "SUCCESS"
}
