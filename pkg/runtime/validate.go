package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/pkg/version"
)

// validateTimeout bounds an MCP connectivity check.
const validateTimeout = 15 * time.Second

// ValidateMCPServer opens a real MCP session against the server spec
// and closes it again, proving the config connects before it is
// enabled. Remote servers use streamable HTTP; container servers run
// the image (or command) over stdio.
func ValidateMCPServer(ctx context.Context, dockerBin string, srv *ent.MCPServer) error {
	transport, err := transportFor(dockerBin, srv)
	if err != nil {
		return err
	}

	checkCtx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(checkCtx, transport, nil)
	if err != nil {
		return fmt.Errorf("mcp server %q failed connectivity check: %w", srv.Name, err)
	}
	return session.Close()
}

func transportFor(dockerBin string, srv *ent.MCPServer) (mcpsdk.Transport, error) {
	switch srv.ServerType {
	case mcpserver.ServerTypeRemote:
		if srv.URL == "" {
			return nil, fmt.Errorf("remote mcp server %q has no url", srv.Name)
		}
		return &mcpsdk.StreamableClientTransport{Endpoint: srv.URL}, nil

	case mcpserver.ServerTypeContainer:
		var cmd *exec.Cmd
		switch {
		case srv.Command != "":
			cmd = exec.Command(srv.Command, srv.Args...)
		case srv.Image != "":
			args := append([]string{"run", "-i", "--rm", srv.Image}, srv.Args...)
			cmd = exec.Command(dockerBin, args...)
		default:
			return nil, fmt.Errorf("container mcp server %q has no image or command", srv.Name)
		}
		return &mcpsdk.CommandTransport{Command: cmd}, nil

	default:
		return nil, fmt.Errorf("unsupported mcp server type %q", srv.ServerType)
	}
}
