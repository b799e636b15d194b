package domain

import (
	"context"
	"time"
)

// EventType defines the category of a runtime event.
type EventType string

const (
	EventOpStart         EventType = "op_start"
	EventOpEnd           EventType = "op_end"
	EventJump            EventType = "jump"
	EventTranche         EventType = "tranche"
	EventRegisterCapture EventType = "register_capture"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// OpEvent marks the start or end of a single operation.
type OpEvent struct {
	EventBase
	Cursor int    `json:"cursor"`
	Name   string `json:"name"`
}

// JumpEvent records a committed jump (budget and label checks already passed).
type JumpEvent struct {
	EventBase
	Label string `json:"label"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

// TrancheEvent marks entry into one fork tranche.
type TrancheEvent struct {
	EventBase
	Index int    `json:"index"`
	Input string `json:"input"`
}

// RegisterEvent records newly captured registers.
type RegisterEvent struct {
	EventBase
	Start  int      `json:"start"` // global index of the first new register
	Values []string `json:"values"`
}

// LifecycleHooks defines callbacks for engine observability. All fields are
// optional; hooks must not block and never affect control flow.
type LifecycleHooks struct {
	OnOpStart         func(context.Context, *OpEvent)
	OnOpEnd           func(context.Context, *OpEvent)
	OnJump            func(context.Context, *JumpEvent)
	OnTranche         func(context.Context, *TrancheEvent)
	OnRegisterCapture func(context.Context, *RegisterEvent)
}
