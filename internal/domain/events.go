// internal/domain/events.go
package domain

import "time"

const (
	EventRequestCreated  = "request_created"
	EventRequestRated    = "request_rated"
	EventRequestCanceled = "request_canceled"
)

type RequestEvent struct {
	RequestID  string        `json:"requestId"`
	SellerName string        `json:"sellerName"`
	UserName   string        `json:"userName"`
	Status     RequestStatus `json:"status"`
	TotalValue float64       `json:"totalValue"`
	EventType  string        `json:"eventType"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewRequestEvent snapshots r for publishing.
func NewRequestEvent(eventType string, r *Request, at time.Time) RequestEvent {
	ev := RequestEvent{
		RequestID:  r.ID,
		SellerName: r.SellerName,
		UserName:   r.UserName,
		Status:     r.Status,
		EventType:  eventType,
		OccurredAt: at,
	}
	if r.TotalValue != nil {
		ev.TotalValue = *r.TotalValue
	}
	return ev
}
