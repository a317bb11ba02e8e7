package models

import (
	"github.com/buildsquads/squads/ent"
)

// RegisterNodeRequest manually registers an external opencode node
type RegisterNodeRequest struct {
	BaseURL string `json:"base_url"`
}

// NodeListResponse lists known external nodes
type NodeListResponse struct {
	Nodes []*ent.ExternalNode `json:"nodes"`
}

// NodeInfo is the payload returned by a node's /info endpoint
type NodeInfo struct {
	Version string `json:"version,omitempty"`
}
