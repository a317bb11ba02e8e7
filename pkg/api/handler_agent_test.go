package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/pkg/config"
)

func TestListRolesHandler(t *testing.T) {
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	s := &Server{cfg: cfg}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.listRolesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var roles []RoleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))

	names := make(map[string]bool)
	for _, r := range roles {
		names[r.Name] = true
		assert.NotEmpty(t, r.Description, r.Name)
	}
	for _, want := range []string{"architect", "builder", "reviewer", "generalist"} {
		assert.True(t, names[want], want)
	}
}

func TestMailHandlerValidation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	tests := []struct {
		name string
		body string
	}{
		{"missing project", `{"body":"hello","from_agent_id":"a","to_agent_id":"b"}`},
		{"missing body", `{"project_id":"p","from_agent_id":"a","to_agent_id":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/mail", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.mailHandler(c)
			require.Error(t, err)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}
