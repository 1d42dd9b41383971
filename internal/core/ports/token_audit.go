package ports

import "time"

// TokenAuditRecord describes a single issued token for replay-log correlation.
// Records are write-only: validation never consults them.
type TokenAuditRecord struct {
	TokenID   string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// TokenAuditor accepts issued-token records off the request path.
type TokenAuditor interface {
	Record(rec TokenAuditRecord)
}
