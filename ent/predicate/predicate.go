// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExternalNode is the predicate function for externalnode builders.
type ExternalNode func(*sql.Selector)

// LaneAssignment is the predicate function for laneassignment builders.
type LaneAssignment func(*sql.Selector)

// MCPServer is the predicate function for mcpserver builders.
type MCPServer func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Squad is the predicate function for squad builders.
type Squad func(*sql.Selector)

// TranscriptEntry is the predicate function for transcriptentry builders.
type TranscriptEntry func(*sql.Selector)
