package websocket

import "encoding/json"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError      Event = "error"
	EventSubmission Event = "submission"
	EventPing       Event = "ping"
	EventPong       Event = "pong"
)

// SubmissionEvent forwards one recorded submission as published.
type SubmissionEvent struct {
	Event      Event           `json:"event"`
	Submission json.RawMessage `json:"submission"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// PingResponse covers both the keep-alive ping and the pong reply.
type PingResponse struct {
	Event Event `json:"event"`
}
