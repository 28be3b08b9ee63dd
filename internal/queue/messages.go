package queue

import (
	"encoding/json"
	"time"

	"subtrack/internal/services"
	"subtrack/internal/types"
)

// GenerateMessage asks a worker to run the transaction generator.
type GenerateMessage struct {
	AsOf           *types.Date `json:"as_of,omitempty"`
	SubscriptionID string      `json:"subscription_id,omitempty"`
	RequestedAt    time.Time   `json:"requested_at"`
}

// NewGenerateMessage creates a message for req stamped with the current time.
func NewGenerateMessage(req services.GenerateRequest) *GenerateMessage {
	return &GenerateMessage{
		AsOf:           req.AsOf,
		SubscriptionID: req.SubscriptionID,
		RequestedAt:    time.Now().UTC(),
	}
}

// Request converts the message back into a generator request.
func (m *GenerateMessage) Request() services.GenerateRequest {
	return services.GenerateRequest{AsOf: m.AsOf, SubscriptionID: m.SubscriptionID}
}

// ToJSON converts the message to JSON bytes
func (m *GenerateMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// GenerateMessageFromJSON decodes a message from JSON bytes.
func GenerateMessageFromJSON(data []byte) (*GenerateMessage, error) {
	var msg GenerateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
