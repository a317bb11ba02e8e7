// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"junior", "senior", "principal"}, Default: "senior"},
		{Name: "system_instruction", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "working", "blocked", "offline"}, Default: "idle"},
		{Name: "mentor_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "squad_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_squads_agents",
				Columns:    []*schema.Column{AgentsColumns[11]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_squad_id_slug",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[11], AgentsColumns[2]},
			},
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[7]},
			},
		},
	}
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "backend_session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "starting", "running", "paused", "completed", "failed", "cancelled", "archived"}, Default: "pending"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"plan", "build"}, Default: "build"},
		{Name: "ticket_key", Type: field.TypeString, Nullable: true},
		{Name: "worktree_path", Type: field.TypeString, Nullable: true},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "base_branch", Type: field.TypeString, Nullable: true},
		{Name: "pending_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_agents_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[17]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_sessions_projects_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[18]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_project_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[18]},
			},
			{
				Name:    "agentsession_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[17], AgentSessionsColumns[2]},
			},
			{
				Name:    "agentsession_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2]},
			},
			{
				Name:    "agentsession_ticket_key",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[6]},
			},
		},
	}
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "lane", Type: field.TypeEnum, Enums: []string{"todo", "plan", "build", "review", "done"}, Default: "todo"},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "prd_path", Type: field.TypeString, Nullable: true},
		{Name: "issue_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "issue_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "plan_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "build_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "review_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "plan_session_id", Type: field.TypeString, Nullable: true},
		{Name: "build_session_id", Type: field.TypeString, Nullable: true},
		{Name: "review_session_id", Type: field.TypeString, Nullable: true},
		{Name: "build_worktree_name", Type: field.TypeString, Nullable: true},
		{Name: "build_worktree_path", Type: field.TypeString, Nullable: true},
		{Name: "build_branch", Type: field.TypeString, Nullable: true},
		{Name: "base_branch", Type: field.TypeString, Nullable: true},
		{Name: "ai_review", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_review_session_id", Type: field.TypeString, Nullable: true},
		{Name: "human_review_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "approved", "changes_requested"}},
		{Name: "human_review_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "human_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "squad_id", Type: field.TypeString},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cards_projects_cards",
				Columns:    []*schema.Column{CardsColumns[27]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "cards_squads_cards",
				Columns:    []*schema.Column{CardsColumns[28]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "card_project_id_lane_position",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[27], CardsColumns[1], CardsColumns[2]},
			},
			{
				Name:    "card_squad_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[28]},
			},
			{
				Name:    "card_build_worktree_path",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[16]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_projects_events",
				Columns:    []*schema.Column{EventsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
		},
	}
	// ExternalNodesColumns holds the columns for the "external_nodes" table.
	ExternalNodesColumns = []*schema.Column{
		{Name: "base_url", Type: field.TypeString, Unique: true},
		{Name: "healthy", Type: field.TypeBool, Default: true},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"local_lsof", "config", "manual"}},
		{Name: "probe_failures", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// ExternalNodesTable holds the schema information for the "external_nodes" table.
	ExternalNodesTable = &schema.Table{
		Name:       "external_nodes",
		Columns:    ExternalNodesColumns,
		PrimaryKey: []*schema.Column{ExternalNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "externalnode_healthy",
				Unique:  false,
				Columns: []*schema.Column{ExternalNodesColumns[1]},
			},
		},
	}
	// LaneAssignmentsColumns holds the columns for the "lane_assignments" table.
	LaneAssignmentsColumns = []*schema.Column{
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "squad_id", Type: field.TypeString},
		{Name: "lane", Type: field.TypeEnum, Enums: []string{"todo", "plan", "build", "review"}},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// LaneAssignmentsTable holds the schema information for the "lane_assignments" table.
	LaneAssignmentsTable = &schema.Table{
		Name:       "lane_assignments",
		Columns:    LaneAssignmentsColumns,
		PrimaryKey: []*schema.Column{LaneAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lane_assignments_projects_lane_assignments",
				Columns:    []*schema.Column{LaneAssignmentsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "laneassignment_project_id_squad_id_lane",
				Unique:  true,
				Columns: []*schema.Column{LaneAssignmentsColumns[4], LaneAssignmentsColumns[1], LaneAssignmentsColumns[2]},
			},
		},
	}
	// McpServersColumns holds the columns for the "mcp_servers" table.
	McpServersColumns = []*schema.Column{
		{Name: "mcp_server_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"builtin", "registry", "custom"}, Default: "custom"},
		{Name: "server_type", Type: field.TypeEnum, Enums: []string{"remote", "container"}},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeString, Default: "inactive"},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "catalog_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "squad_id", Type: field.TypeString},
	}
	// McpServersTable holds the schema information for the "mcp_servers" table.
	McpServersTable = &schema.Table{
		Name:       "mcp_servers",
		Columns:    McpServersColumns,
		PrimaryKey: []*schema.Column{McpServersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_servers_squads_mcp_servers",
				Columns:    []*schema.Column{McpServersColumns[15]},
				RefColumns: []*schema.Column{SquadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpserver_squad_id_name",
				Unique:  true,
				Columns: []*schema.Column{McpServersColumns[15], McpServersColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_path",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
		},
	}
	// SquadsColumns holds the columns for the "squads" table.
	SquadsColumns = []*schema.Column{
		{Name: "squad_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "opencode_status", Type: field.TypeEnum, Enums: []string{"idle", "provisioning", "running", "error"}, Default: "idle"},
		{Name: "opencode_url", Type: field.TypeString, Nullable: true},
		{Name: "opencode_pid", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SquadsTable holds the schema information for the "squads" table.
	SquadsTable = &schema.Table{
		Name:       "squads",
		Columns:    SquadsColumns,
		PrimaryKey: []*schema.Column{SquadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "squads_projects_squads",
				Columns:    []*schema.Column{SquadsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "squad_project_id",
				Unique:  false,
				Columns: []*schema.Column{SquadsColumns[9]},
			},
			{
				Name:    "squad_opencode_status",
				Unique:  false,
				Columns: []*schema.Column{SquadsColumns[3]},
			},
		},
	}
	// TranscriptEntriesColumns holds the columns for the "transcript_entries" table.
	TranscriptEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system", "tool"}},
		{Name: "backend_message_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// TranscriptEntriesTable holds the schema information for the "transcript_entries" table.
	TranscriptEntriesTable = &schema.Table{
		Name:       "transcript_entries",
		Columns:    TranscriptEntriesColumns,
		PrimaryKey: []*schema.Column{TranscriptEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcript_entries_agent_sessions_transcript_entries",
				Columns:    []*schema.Column{TranscriptEntriesColumns[6]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptentry_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{TranscriptEntriesColumns[6], TranscriptEntriesColumns[1]},
			},
			{
				Name:    "transcriptentry_session_id_backend_message_id",
				Unique:  true,
				Columns: []*schema.Column{TranscriptEntriesColumns[6], TranscriptEntriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentSessionsTable,
		CardsTable,
		EventsTable,
		ExternalNodesTable,
		LaneAssignmentsTable,
		McpServersTable,
		ProjectsTable,
		SquadsTable,
		TranscriptEntriesTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = SquadsTable
	AgentSessionsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentSessionsTable.ForeignKeys[1].RefTable = ProjectsTable
	CardsTable.ForeignKeys[0].RefTable = ProjectsTable
	CardsTable.ForeignKeys[1].RefTable = SquadsTable
	EventsTable.ForeignKeys[0].RefTable = ProjectsTable
	LaneAssignmentsTable.ForeignKeys[0].RefTable = ProjectsTable
	McpServersTable.ForeignKeys[0].RefTable = SquadsTable
	SquadsTable.ForeignKeys[0].RefTable = ProjectsTable
	TranscriptEntriesTable.ForeignKeys[0].RefTable = AgentSessionsTable
}
