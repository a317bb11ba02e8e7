// Code generated by ent, DO NOT EDIT.

package mcpserver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldID, id))
}

// SquadID applies equality check predicate on the "squad_id" field. It's identical to SquadIDEQ.
func SquadID(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldSquadID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldName, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldImage, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldURL, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldCommand, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldEnabled, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldStatus, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldUpdatedAt, v))
}

// SquadIDEQ applies the EQ predicate on the "squad_id" field.
func SquadIDEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldSquadID, v))
}

// SquadIDNEQ applies the NEQ predicate on the "squad_id" field.
func SquadIDNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldSquadID, v))
}

// SquadIDIn applies the In predicate on the "squad_id" field.
func SquadIDIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldSquadID, vs...))
}

// SquadIDNotIn applies the NotIn predicate on the "squad_id" field.
func SquadIDNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldSquadID, vs...))
}

// SquadIDGT applies the GT predicate on the "squad_id" field.
func SquadIDGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldSquadID, v))
}

// SquadIDGTE applies the GTE predicate on the "squad_id" field.
func SquadIDGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldSquadID, v))
}

// SquadIDLT applies the LT predicate on the "squad_id" field.
func SquadIDLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldSquadID, v))
}

// SquadIDLTE applies the LTE predicate on the "squad_id" field.
func SquadIDLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldSquadID, v))
}

// SquadIDContains applies the Contains predicate on the "squad_id" field.
func SquadIDContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldSquadID, v))
}

// SquadIDHasPrefix applies the HasPrefix predicate on the "squad_id" field.
func SquadIDHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldSquadID, v))
}

// SquadIDHasSuffix applies the HasSuffix predicate on the "squad_id" field.
func SquadIDHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldSquadID, v))
}

// SquadIDEqualFold applies the EqualFold predicate on the "squad_id" field.
func SquadIDEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldSquadID, v))
}

// SquadIDContainsFold applies the ContainsFold predicate on the "squad_id" field.
func SquadIDContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldSquadID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldName, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldSource, vs...))
}

// ServerTypeEQ applies the EQ predicate on the "server_type" field.
func ServerTypeEQ(v ServerType) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldServerType, v))
}

// ServerTypeNEQ applies the NEQ predicate on the "server_type" field.
func ServerTypeNEQ(v ServerType) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldServerType, v))
}

// ServerTypeIn applies the In predicate on the "server_type" field.
func ServerTypeIn(vs ...ServerType) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldServerType, vs...))
}

// ServerTypeNotIn applies the NotIn predicate on the "server_type" field.
func ServerTypeNotIn(vs ...ServerType) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldServerType, vs...))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldImage, v))
}

// ImageIsNil applies the IsNil predicate on the "image" field.
func ImageIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldImage))
}

// ImageNotNil applies the NotNil predicate on the "image" field.
func ImageNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldImage))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldImage, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldURL, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldCommand, v))
}

// ArgsIsNil applies the IsNil predicate on the "args" field.
func ArgsIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldArgs))
}

// ArgsNotNil applies the NotNil predicate on the "args" field.
func ArgsNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldArgs))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldHeaders))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldEnabled, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldStatus, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldContainsFold(FieldLastError, v))
}

// CatalogMetaIsNil applies the IsNil predicate on the "catalog_meta" field.
func CatalogMetaIsNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIsNull(FieldCatalogMeta))
}

// CatalogMetaNotNil applies the NotNil predicate on the "catalog_meta" field.
func CatalogMetaNotNil() predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotNull(FieldCatalogMeta))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MCPServer {
	return predicate.MCPServer(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSquad applies the HasEdge predicate on the "squad" edge.
func HasSquad() predicate.MCPServer {
	return predicate.MCPServer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSquadWith applies the HasEdge predicate on the "squad" edge with a given conditions (other predicates).
func HasSquadWith(preds ...predicate.Squad) predicate.MCPServer {
	return predicate.MCPServer(func(s *sql.Selector) {
		step := newSquadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MCPServer) predicate.MCPServer {
	return predicate.MCPServer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MCPServer) predicate.MCPServer {
	return predicate.MCPServer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MCPServer) predicate.MCPServer {
	return predicate.MCPServer(sql.NotPredicates(p))
}
