package entity

import "time"

// OrderStatus tracks a drafting order through delivery.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusInReview   OrderStatus = "in_review"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusInReview,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a commissioned permit-drafting job for a signed-in client.
type Order struct {
	ID          string      `json:"id" firestore:"-"` // Document ID.
	ClientUID   string      `json:"clientUid" firestore:"clientUid"`
	ServiceName string      `json:"serviceName" firestore:"serviceName"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	Status      OrderStatus `json:"status" firestore:"status"`
	AdminNotes  string      `json:"adminNotes,omitempty" firestore:"adminNotes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedAt"`
}
