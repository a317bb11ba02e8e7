// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/event"
	"github.com/buildsquads/squads/ent/externalnode"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/schema"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[2].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescSlug is the schema descriptor for slug field.
	agentDescSlug := agentFields[3].Descriptor()
	// agent.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	agent.SlugValidator = agentDescSlug.Validators[0].(func(string) error)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[10].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[11].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescVersion is the schema descriptor for version field.
	agentsessionDescVersion := agentsessionFields[15].Descriptor()
	// agentsession.DefaultVersion holds the default value on creation for the version field.
	agentsession.DefaultVersion = agentsessionDescVersion.Default.(int)
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[18].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescPosition is the schema descriptor for position field.
	cardDescPosition := cardFields[4].Descriptor()
	// card.DefaultPosition holds the default value on creation for the position field.
	card.DefaultPosition = cardDescPosition.Default.(int)
	// cardDescVersion is the schema descriptor for version field.
	cardDescVersion := cardFields[26].Descriptor()
	// card.DefaultVersion holds the default value on creation for the version field.
	card.DefaultVersion = cardDescVersion.Default.(int)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[27].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[28].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// card.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	card.UpdateDefaultUpdatedAt = cardDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescOccurredAt is the schema descriptor for occurred_at field.
	eventDescOccurredAt := eventFields[7].Descriptor()
	// event.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	event.DefaultOccurredAt = eventDescOccurredAt.Default.(func() time.Time)
	externalnodeFields := schema.ExternalNode{}.Fields()
	_ = externalnodeFields
	// externalnodeDescHealthy is the schema descriptor for healthy field.
	externalnodeDescHealthy := externalnodeFields[1].Descriptor()
	// externalnode.DefaultHealthy holds the default value on creation for the healthy field.
	externalnode.DefaultHealthy = externalnodeDescHealthy.Default.(bool)
	// externalnodeDescProbeFailures is the schema descriptor for probe_failures field.
	externalnodeDescProbeFailures := externalnodeFields[4].Descriptor()
	// externalnode.DefaultProbeFailures holds the default value on creation for the probe_failures field.
	externalnode.DefaultProbeFailures = externalnodeDescProbeFailures.Default.(int)
	// externalnodeDescLastSeen is the schema descriptor for last_seen field.
	externalnodeDescLastSeen := externalnodeFields[5].Descriptor()
	// externalnode.DefaultLastSeen holds the default value on creation for the last_seen field.
	externalnode.DefaultLastSeen = externalnodeDescLastSeen.Default.(func() time.Time)
	mcpserverFields := schema.MCPServer{}.Fields()
	_ = mcpserverFields
	// mcpserverDescName is the schema descriptor for name field.
	mcpserverDescName := mcpserverFields[2].Descriptor()
	// mcpserver.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mcpserver.NameValidator = mcpserverDescName.Validators[0].(func(string) error)
	// mcpserverDescEnabled is the schema descriptor for enabled field.
	mcpserverDescEnabled := mcpserverFields[10].Descriptor()
	// mcpserver.DefaultEnabled holds the default value on creation for the enabled field.
	mcpserver.DefaultEnabled = mcpserverDescEnabled.Default.(bool)
	// mcpserverDescStatus is the schema descriptor for status field.
	mcpserverDescStatus := mcpserverFields[11].Descriptor()
	// mcpserver.DefaultStatus holds the default value on creation for the status field.
	mcpserver.DefaultStatus = mcpserverDescStatus.Default.(string)
	// mcpserverDescCreatedAt is the schema descriptor for created_at field.
	mcpserverDescCreatedAt := mcpserverFields[14].Descriptor()
	// mcpserver.DefaultCreatedAt holds the default value on creation for the created_at field.
	mcpserver.DefaultCreatedAt = mcpserverDescCreatedAt.Default.(func() time.Time)
	// mcpserverDescUpdatedAt is the schema descriptor for updated_at field.
	mcpserverDescUpdatedAt := mcpserverFields[15].Descriptor()
	// mcpserver.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mcpserver.DefaultUpdatedAt = mcpserverDescUpdatedAt.Default.(func() time.Time)
	// mcpserver.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mcpserver.UpdateDefaultUpdatedAt = mcpserverDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescPath is the schema descriptor for path field.
	projectDescPath := projectFields[2].Descriptor()
	// project.PathValidator is a validator for the "path" field. It is called by the builders before save.
	project.PathValidator = projectDescPath.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	squadFields := schema.Squad{}.Fields()
	_ = squadFields
	// squadDescName is the schema descriptor for name field.
	squadDescName := squadFields[2].Descriptor()
	// squad.NameValidator is a validator for the "name" field. It is called by the builders before save.
	squad.NameValidator = squadDescName.Validators[0].(func(string) error)
	// squadDescCreatedAt is the schema descriptor for created_at field.
	squadDescCreatedAt := squadFields[8].Descriptor()
	// squad.DefaultCreatedAt holds the default value on creation for the created_at field.
	squad.DefaultCreatedAt = squadDescCreatedAt.Default.(func() time.Time)
	// squadDescUpdatedAt is the schema descriptor for updated_at field.
	squadDescUpdatedAt := squadFields[9].Descriptor()
	// squad.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	squad.DefaultUpdatedAt = squadDescUpdatedAt.Default.(func() time.Time)
	// squad.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	squad.UpdateDefaultUpdatedAt = squadDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptentryFields := schema.TranscriptEntry{}.Fields()
	_ = transcriptentryFields
	// transcriptentryDescSeq is the schema descriptor for seq field.
	transcriptentryDescSeq := transcriptentryFields[2].Descriptor()
	// transcriptentry.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	transcriptentry.SeqValidator = transcriptentryDescSeq.Validators[0].(func(int) error)
	// transcriptentryDescCreatedAt is the schema descriptor for created_at field.
	transcriptentryDescCreatedAt := transcriptentryFields[6].Descriptor()
	// transcriptentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcriptentry.DefaultCreatedAt = transcriptentryDescCreatedAt.Default.(func() time.Time)
}
