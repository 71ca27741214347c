package models

// LogCategory buckets demo log events for filtering/styling in the terminal
// panel.
type LogCategory string

const (
	LogCategoryUI       LogCategory = "ui"
	LogCategoryAgent    LogCategory = "agent"
	LogCategoryK2       LogCategory = "k2"
	LogCategoryMerchant LogCategory = "merchant"
	LogCategoryCheckout LogCategory = "checkout"
	LogCategoryPayment  LogCategory = "payment"
	LogCategorySystem   LogCategory = "system"
)

// LogEvent is one structured record on the demo log stream. Ephemeral by
// design: the bus keeps a bounded buffer and nothing is persisted.
type LogEvent struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Category  LogCategory    `json:"category"`
	Event     string         `json:"event"`
	Message   string         `json:"message"`
	SessionID string         `json:"session_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	Level     string         `json:"level,omitempty"`
}
