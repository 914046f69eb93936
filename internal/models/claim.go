package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Claim statuses. A claim is created as pending and moves to approved or
// rejected exactly once; no further transition is exposed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Domain errors surfaced by the claims store.
var (
	ErrClaimNotFound       = errors.New("claim not found")
	ErrDuplicateSubmission = errors.New("duplicate same-day submission")
)

// TravelDetails holds the optional fields of a travel claim.
type TravelDetails struct {
	TravelDate      *string `json:"travelDate,omitempty"`
	FromDestination *string `json:"fromDestination,omitempty"`
	ToDestination   *string `json:"toDestination,omitempty"`
	Purpose         *string `json:"purpose,omitempty"`
}

// MedicalDetails holds the optional fields of a medical claim.
type MedicalDetails struct {
	TreatmentDate *string `json:"treatmentDate,omitempty"`
	Hospital      *string `json:"hospital,omitempty"`
	TreatmentType *string `json:"treatmentType,omitempty"`
}

// GenericDetails holds the optional fields of any other claim type.
type GenericDetails struct {
	ClaimDate   *string `json:"claimDate,omitempty"`
	ClaimType   *string `json:"claimType,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Claim is a single reimbursement request owned by one employee.
type Claim struct {
	ID             int64           `json:"id"`
	Type           string          `json:"type"`
	EmployeeID     string          `json:"employeeId"`
	EmployeeName   string          `json:"employeeName"`
	Amount         decimal.Decimal `json:"amount"`
	SubmissionDate time.Time       `json:"submissionDate"`
	Status         string          `json:"status"`
	TravelDetails
	MedicalDetails
	GenericDetails
}

// SubmitClaimInput is the submit payload. The detail structs close the set of
// accepted optional fields; unknown keys are dropped at decode time.
type SubmitClaimInput struct {
	Type         string          `json:"type" binding:"required"`
	EmployeeID   string          `json:"employeeId" binding:"required"`
	EmployeeName string          `json:"employeeName" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	TravelDetails
	MedicalDetails
	GenericDetails
}

// ClaimFilter narrows a claim listing. Zero values mean no filtering; a
// Status of "all" is the explicit no-filter sentinel.
type ClaimFilter struct {
	Search string
	Status string
}

// Employee IDs are ATS0 followed by exactly three digits. Go's regexp has no
// negative lookahead, so the banned 000 suffix is checked separately.
var employeeIDPattern = regexp.MustCompile(`^ATS0\d{3}$`)

// IsValidEmployeeID reports whether id is in the range ATS0001-ATS0999.
// Matching is case-sensitive.
func IsValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id) && !strings.HasSuffix(id, "000")
}

// IsDecisionStatus reports whether status is a value UpdateStatus accepts.
func IsDecisionStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
