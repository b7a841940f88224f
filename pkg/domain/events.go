package domain

import "time"

// StepEvent is emitted when the conversation enters a step.
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	StepID    string    `json:"step_id"`
	EndStep   bool      `json:"end_step"`
}

// MessageEvent is emitted when a message is appended to the transcript.
type MessageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	MessageID string    `json:"message_id"`
	Author    Author    `json:"author"`
	StepID    string    `json:"step_id"`
}

// EstimateEvent is emitted when a numeric input resolves into a cost estimate.
type EstimateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	StepID    string    `json:"step_id"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
}

// InputRejectedEvent is emitted when numeric input fails validation.
// Blank submissions are silent by design and emit nothing.
type InputRejectedEvent struct {
	Timestamp time.Time `json:"timestamp"`
	StepID    string    `json:"step_id"`
	Reason    string    `json:"reason"` // "decimal" | "not_positive" | "unparsable"
}

// LifecycleHooks defines callbacks for engine observability.
// Nil hooks are skipped; hooks must not mutate engine state.
type LifecycleHooks struct {
	OnStepEnter       func(*StepEvent)
	OnMessageAppended func(*MessageEvent)
	OnEstimate        func(*EstimateEvent)
	OnInputRejected   func(*InputRejectedEvent)
	OnReset           func()
}
