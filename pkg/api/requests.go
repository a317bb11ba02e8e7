package api

// RegisterNodeRequest is the body of POST /api/v1/nodes.
type RegisterNodeRequest struct {
	BaseURL string `json:"base_url"`
}

// MailRequest is the body of POST /api/v1/mail.
type MailRequest struct {
	ProjectID   string `json:"project_id"`
	FromAgentID string `json:"from_agent_id"`
	ToAgentID   string `json:"to_agent_id"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body"`
}
