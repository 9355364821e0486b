package domain

import "time"

type NotificationEventType string

const (
	NotificationEventRequestUpdate NotificationEventType = "request_update"
	NotificationEventNewRequest    NotificationEventType = "new_request"
)

type Notification struct {
	ID              int32                 `json:"id"`
	TargetUserID    int32                 `json:"target_user_id"`
	EventType       NotificationEventType `json:"event_type"`
	Title           string                `json:"title"`
	Message         string                `json:"message"`
	Link            string                `json:"link,omitempty"`
	IsRead          bool                  `json:"is_read"`
	RelatedItemID   *int32                `json:"related_item_id,omitempty"`
	RelatedUserID   *int32                `json:"related_user_id,omitempty"`
	RelatedUserName string                `json:"related_user_name,omitempty"`
	CreatedOn       time.Time             `json:"created_on"`
}
