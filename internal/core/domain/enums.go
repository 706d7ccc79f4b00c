package domain

import "strings"

// Status is the canonical loan/payment status presented to clients
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusOverdue    Status = "OVERDUE"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
	StatusCurrent    Status = "CURRENT"
)

// Raw storage status codes
const (
	StatusCodePending    = 0
	StatusCodeProcessing = 1
	StatusCodeCompleted  = 2
	StatusCodeOverdue    = 3
	StatusCodeFailed     = 4
	StatusCodeCancelled  = 5
	StatusCodeCurrent    = 6
)

var statusByCode = map[int]Status{
	StatusCodePending:    StatusPending,
	StatusCodeProcessing: StatusProcessing,
	StatusCodeCompleted:  StatusCompleted,
	StatusCodeOverdue:    StatusOverdue,
	StatusCodeFailed:     StatusFailed,
	StatusCodeCancelled:  StatusCancelled,
	StatusCodeCurrent:    StatusCurrent,
}

// StatusFromCode maps a raw storage code to its canonical status. Unknown
// codes degrade to PENDING rather than failing; a record must never be
// rejected over an unmapped code.
func StatusFromCode(code int) Status {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return StatusPending
}

// LoanType is the canonical loan product type
type LoanType string

const (
	LoanTypeCash  LoanType = "CASH"
	LoanTypePayGo LoanType = "PAYGO"
)

// LoanTypeFromRaw maps a raw storage loan type to its canonical form.
// Unrecognized values are upper-cased verbatim so new product types pass
// through without a code change here.
func LoanTypeFromRaw(raw string) LoanType {
	switch raw {
	case "cash":
		return LoanTypeCash
	case "paygo", "pay_go":
		return LoanTypePayGo
	default:
		return LoanType(strings.ToUpper(raw))
	}
}

// BinaryStatusCode collapses a raw payment status string to a storage code:
// "completed" becomes 2, everything else becomes 0. The collapse is lossy
// on purpose; intermediate states ("processing", "failed") all surface as
// PENDING at the aggregation boundary.
func BinaryStatusCode(raw string) int {
	if raw == "completed" {
		return StatusCodeCompleted
	}
	return StatusCodePending
}

// PaymentStatusFromRaw translates a raw payment status string through the
// binary collapse and the code table.
func PaymentStatusFromRaw(raw string) Status {
	return StatusFromCode(BinaryStatusCode(raw))
}
