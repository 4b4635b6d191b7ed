package domain

import "time"

// Audit actions emitted by the registries and the ledger.
const (
	AuditStudentCreated = "student_created"
	AuditStudentDeleted = "student_deleted"
	AuditAdminCreated   = "admin_created"
	AuditAdminEdited    = "admin_edited"
	AuditAdminDeleted   = "admin_deleted"
	AuditTicketsSet     = "tickets_set"
	AuditTicketRedeemed = "ticket_redeemed"
)

// AuditEntry is an immutable record of a mutating operation, written
// asynchronously so the request path never blocks on the audit store.
type AuditEntry struct {
	ID        string    `json:"audit_id" bson:"_id"`
	Actor     string    `json:"actor" bson:"actor"`
	Action    string    `json:"action" bson:"action"`
	Entity    string    `json:"entity" bson:"entity"`
	EntityID  string    `json:"entity_id" bson:"entity_id"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
