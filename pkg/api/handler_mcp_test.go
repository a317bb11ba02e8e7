package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
	testdb "github.com/buildsquads/squads/test/database"
)

// Enabling a container server with the docker mcp CLI missing must fail
// with cli_unavailable and leave the row untouched.
func TestUpdateMCPServerEnableGate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	project, err := client.Client.Project.Create().
		SetID(uuid.New().String()).
		SetName("widgets").
		SetPath("/tmp/widgets-" + uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)
	squad, err := client.Client.Squad.Create().
		SetID(uuid.New().String()).
		SetProjectID(project.ID).
		SetName("core-platform").
		Save(ctx)
	require.NoError(t, err)
	server, err := client.Client.MCPServer.Create().
		SetID(uuid.New().String()).
		SetSquadID(squad.ID).
		SetName("notion").
		SetServerType(mcpserver.ServerTypeContainer).
		SetImage("mcp/notion").
		Save(ctx)
	require.NoError(t, err)

	s := &Server{
		mcpService: services.NewMCPService(client.Client),
		catalog:    runtime.NewCatalog("/nonexistent/docker", time.Minute),
	}

	e := echo.New()
	e.PUT("/mcp-servers/:id", s.updateMCPServerHandler)

	req := httptest.NewRequest(http.MethodPut, "/mcp-servers/"+server.ID,
		strings.NewReader(`{"enabled":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "cli_unavailable")

	fresh, err := client.Client.MCPServer.Get(ctx, server.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Enabled)
}

func TestFilterCatalog(t *testing.T) {
	entries := []models.CatalogEntry{
		{Name: "notion", Description: "Notion workspace access",
			Meta: map[string]any{"category": "productivity", "tags": []any{"docs", "wiki"}}},
		{Name: "postgres", Description: "Query PostgreSQL databases",
			Meta: map[string]any{"category": "database", "tags": []any{"sql"}}},
	}

	assert.Len(t, filterCatalog(entries, "", "", ""), 2)
	assert.Len(t, filterCatalog(entries, "postgre", "", ""), 1)
	assert.Len(t, filterCatalog(entries, "", "database", ""), 1)
	assert.Len(t, filterCatalog(entries, "", "", "wiki"), 1)
	assert.Empty(t, filterCatalog(entries, "redis", "", ""))
}
