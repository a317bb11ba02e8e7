// Package opencode is the HTTP+SSE client for a squad's opencode
// backend process. One Client per backend base URL; the orchestrator
// owns the session mapping on top of it.
package opencode

// Info is the backend's /info response, also used as the health probe.
type Info struct {
	Version string `json:"version,omitempty"`
	AppName string `json:"app,omitempty"`
}

// Session is the backend's view of a conversation.
type Session struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// PromptRequest dispatches one turn into a backend session.
type PromptRequest struct {
	Text  string `json:"text"`
	Mode  string `json:"mode,omitempty"`
	Model string `json:"model,omitempty"`
}

// PromptResponse acknowledges a dispatched turn. MessageID identifies
// the user message the backend created for it.
type PromptResponse struct {
	MessageID string `json:"message_id"`
}

// CommandRequest forwards a slash command.
type CommandRequest struct {
	Command   string `json:"command"`
	Arguments string `json:"arguments,omitempty"`
}

// ShellRequest forwards a shell invocation.
type ShellRequest struct {
	Command string `json:"command"`
}

// Event is one server-sent event from the backend's /event stream.
// Kind is the raw dotted backend kind (message.part.updated); the
// ingest pipeline normalizes it.
type Event struct {
	// ID is the SSE event id when the backend sends one; used for
	// Last-Event-ID resume on reconnect.
	ID   string
	Kind string
	Data []byte
}
