package domain

import (
	"strings"
	"time"
)

// Kind identifies one of the parametric (reference) tables.
type Kind string

const (
	KindCourt          Kind = "court"
	KindClaimant       Kind = "claimant"
	KindObligationType Kind = "obligation-type"
	KindProcessType    Kind = "process-type"
)

// Collection returns the storage collection backing the kind.
func (k Kind) Collection() string {
	switch k {
	case KindCourt:
		return "courts"
	case KindClaimant:
		return "claimants"
	case KindObligationType:
		return "obligation_types"
	case KindProcessType:
		return "process_types"
	}
	return string(k)
}

// RequiresCity reports whether records of this kind carry a mandatory city field.
func (k Kind) RequiresCity() bool {
	return k == KindCourt
}

// Parametric is the shared shape of every reference-table record.
// City is only populated for courts.
type Parametric struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	City        string    `json:"city,omitempty"`
}

// NormalizeName produces the canonical form used for uniqueness checks:
// surrounding whitespace stripped, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
