package runtime

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/mcpserver"
)

func TestServerToTOMLRemote(t *testing.T) {
	srv := &ent.MCPServer{
		Name:       "tickets",
		ServerType: mcpserver.ServerTypeRemote,
		URL:        "https://mcp.example.com/sse",
		Headers:    map[string]string{"Authorization": "Bearer ${TICKETS_TOKEN}"},
		// Container fields must not leak into a remote entry.
		Image:   "ignored",
		Command: "ignored",
	}

	out := serverToTOML(srv)

	assert.Equal(t, "remote", out.Type)
	assert.Equal(t, "https://mcp.example.com/sse", out.URL)
	assert.Empty(t, out.Image)
	assert.Empty(t, out.Command)
	assert.Equal(t, "Bearer ${TICKETS_TOKEN}", out.Headers["Authorization"])
}

func TestServerToTOMLContainer(t *testing.T) {
	srv := &ent.MCPServer{
		Name:       "github",
		ServerType: mcpserver.ServerTypeContainer,
		Image:      "mcp/github:latest",
		Command:    "serve",
		Args:       []string{"--readonly"},
		URL:        "ignored",
	}

	out := serverToTOML(srv)

	assert.Equal(t, "container", out.Type)
	assert.Equal(t, "mcp/github:latest", out.Image)
	assert.Equal(t, "serve", out.Command)
	assert.Equal(t, []string{"--readonly"}, out.Args)
	assert.Empty(t, out.URL)
}

func TestMCPTOMLRoundTrip(t *testing.T) {
	doc := mcpTOML{Servers: map[string]mcpServerTOML{
		"github": {Type: "container", Image: "mcp/github:latest", Args: []string{"--readonly"}},
		"tickets": {
			Type:    "remote",
			URL:     "https://mcp.example.com/sse",
			Headers: map[string]string{"Authorization": "Bearer x"},
		},
	}}

	data, err := toml.Marshal(doc)
	require.NoError(t, err)

	var parsed mcpTOML
	require.NoError(t, toml.Unmarshal(data, &parsed))
	require.Len(t, parsed.Servers, 2)
	assert.Equal(t, "mcp/github:latest", parsed.Servers["github"].Image)
	assert.Equal(t, "https://mcp.example.com/sse", parsed.Servers["tickets"].URL)
}
