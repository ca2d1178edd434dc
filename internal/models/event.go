package models

import "time"

// Event is the broker message envelope delivered to subscribers.
// Data holds base64 of a UTF-8 JSON array; nil means the message carried no payload.
type Event struct {
	Data        *string           `json:"data,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"message_id,omitempty"`
	PublishTime time.Time         `json:"publish_time,omitempty"`
}

// PushRequest is the body of a push delivery to the HTTP subscriber endpoint.
type PushRequest struct {
	Message      Event  `json:"message"`
	Subscription string `json:"subscription"`
}
