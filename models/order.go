package models

import "strings"

// Order statuses. The workflow usually moves top to bottom but any value
// may be set at any time.
const (
	StatusScheduledPickup = "Scheduled Pickup"
	StatusProcessing      = "Processing"
	StatusReady           = "Ready"
	StatusCompleted       = "Completed"
)

var orderStatuses = []string{
	StatusScheduledPickup,
	StatusProcessing,
	StatusReady,
	StatusCompleted,
}

type Order struct {
	ID                  int     `json:"order_id"`
	ClientID            int     `json:"client_id"`
	ServiceType         string  `json:"service_type"`
	WeightCount         float64 `json:"weight_count"`
	PickupDate          string  `json:"pickup_date"`
	DueDate             string  `json:"due_date"`
	Status              string  `json:"status"`
	SpecialInstructions string  `json:"special_instructions"`
	DeliveryFee         float64 `json:"delivery_fee"`
	// TotalFee is fixed when the order is created and never recomputed.
	TotalFee float64 `json:"total_fee"`
}

// NormalizeOrderStatus maps a status string to its canonical form,
// ignoring case and surrounding whitespace. The second return value is
// false for anything that is not one of the four known statuses.
func NormalizeOrderStatus(status string) (string, bool) {
	trimmed := strings.TrimSpace(status)
	for _, s := range orderStatuses {
		if strings.EqualFold(trimmed, s) {
			return s, true
		}
	}
	return "", false
}
