// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/task,
// domain/user, domain/audit). This root package holds sentinel errors, the
// ValidationError type, and the pure input validation rules every
// orchestrator applies before touching persistence or authorization.
package domain
