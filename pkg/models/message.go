package models

import "encoding/json"

// PartType discriminates the variants of a message part.
type PartType string

// Known part types emitted by the opencode backend. An unknown type is
// preserved as-is with its original map so newer backends keep working.
const (
	PartText       PartType = "text"
	PartReasoning  PartType = "reasoning"
	PartTool       PartType = "tool"
	PartFile       PartType = "file"
	PartPatch      PartType = "patch"
	PartStepStart  PartType = "step-start"
	PartStepFinish PartType = "step-finish"
	PartSnapshot   PartType = "snapshot"
	PartCompaction PartType = "compaction"
	PartAgent      PartType = "agent"
	PartRetry      PartType = "retry"
	PartSubtask    PartType = "subtask"
)

// knownPartTypes is the closed set; anything else is an opaque variant.
var knownPartTypes = map[PartType]bool{
	PartText: true, PartReasoning: true, PartTool: true, PartFile: true,
	PartPatch: true, PartStepStart: true, PartStepFinish: true,
	PartSnapshot: true, PartCompaction: true, PartAgent: true,
	PartRetry: true, PartSubtask: true,
}

// Part is one tagged variant of a message part. Fields beyond the
// discriminator are populated only for the types that use them; Raw always
// carries the original backend map so no information is lost on round-trip.
type Part struct {
	ID   string   `json:"id,omitempty"`
	Type PartType `json:"type"`

	// Text and reasoning parts.
	Text string `json:"text,omitempty"`

	// Tool parts.
	Tool   string                 `json:"tool,omitempty"`
	CallID string                 `json:"call_id,omitempty"`
	State  map[string]interface{} `json:"state,omitempty"`

	// Raw is the original backend payload, preserved verbatim.
	Raw map[string]interface{} `json:"raw,omitempty"`
}

// Known reports whether the part type is in the closed set.
func (p Part) Known() bool {
	return knownPartTypes[p.Type]
}

// Key returns the identity used for idempotent upserts: the backend part
// id when present, else the type (at most one non-id part per type).
func (p Part) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return string(p.Type)
}

// ParsePart decodes a backend part map into a Part, keeping the original.
func ParsePart(raw map[string]interface{}) Part {
	p := Part{Raw: raw}
	if v, ok := raw["id"].(string); ok {
		p.ID = v
	}
	if v, ok := raw["type"].(string); ok {
		p.Type = PartType(v)
	}
	if v, ok := raw["text"].(string); ok {
		p.Text = v
	}
	if v, ok := raw["tool"].(string); ok {
		p.Tool = v
	}
	if v, ok := raw["callID"].(string); ok {
		p.CallID = v
	}
	if v, ok := raw["state"].(map[string]interface{}); ok {
		p.State = v
	}
	return p
}

// Message is the normalized view of one transcript entry: backend info
// fields plus an ordered part list folded by part key.
type Message struct {
	ID    string                 `json:"id"`
	Role  string                 `json:"role"`
	Info  map[string]interface{} `json:"info,omitempty"`
	Parts []Part                 `json:"parts"`
}

// UpsertPart merges an incoming part into the message by part key.
// Text parts append their delta to any existing text; other types replace.
// Returns true if a new part was added (vs merged into an existing one).
func (m *Message) UpsertPart(incoming Part, delta string) bool {
	for i := range m.Parts {
		if m.Parts[i].Key() != incoming.Key() {
			continue
		}
		if incoming.Type == PartText && delta != "" {
			m.Parts[i].Text += delta
			m.Parts[i].Raw = incoming.Raw
			return false
		}
		m.Parts[i] = incoming
		return false
	}
	if incoming.Type == PartText && delta != "" && incoming.Text == "" {
		incoming.Text = delta
	}
	m.Parts = append(m.Parts, incoming)
	return true
}

// AppendText appends text to the last text part, creating one if needed.
func (m *Message) AppendText(text string) {
	for i := len(m.Parts) - 1; i >= 0; i-- {
		if m.Parts[i].Type == PartText {
			m.Parts[i].Text += text
			return
		}
	}
	m.Parts = append(m.Parts, Part{Type: PartText, Text: text})
}

// TextContent concatenates all text parts.
func (m *Message) TextContent() string {
	var out string
	for _, p := range m.Parts {
		if p.Type == PartText {
			out += p.Text
		}
	}
	return out
}

// ToPayload converts the message to the opaque map stored on a
// transcript entry.
func (m *Message) ToPayload() map[string]interface{} {
	// Round-trip through JSON so nested structs become plain maps and the
	// stored payload is exactly what a reader of the column would see.
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]interface{}{"id": m.ID, "role": m.Role}
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]interface{}{"id": m.ID, "role": m.Role}
	}
	return payload
}

// MessageFromPayload rebuilds a Message from a stored payload map.
func MessageFromPayload(payload map[string]interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
