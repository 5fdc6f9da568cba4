package entity

import (
	"time"

	domainerrors "petplace/internal/domain/errors"
)

// BusinessStatus is the moderation state of a business listing.
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusApproved  BusinessStatus = "approved"
	BusinessStatusRejected  BusinessStatus = "rejected"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

// businessTransitions lists every allowed edge of the moderation state machine.
var businessTransitions = map[BusinessStatus][]BusinessStatus{
	BusinessStatusPending:   {BusinessStatusApproved, BusinessStatusRejected},
	BusinessStatusApproved:  {BusinessStatusSuspended, BusinessStatusPending},
	BusinessStatusRejected:  {},
	BusinessStatusSuspended: {},
}

// IsValid checks if the status is a known value.
func (s BusinessStatus) IsValid() bool {
	_, ok := businessTransitions[s]

	return ok
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s BusinessStatus) CanTransitionTo(next BusinessStatus) bool {
	for _, allowed := range businessTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// TransitionTo moves the business to next, stamping ApprovedAt on approval.
func (b *Business) TransitionTo(next BusinessStatus, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(string(b.Status) + " -> " + string(next))
	}

	b.Status = next
	b.UpdatedAt = now
	if next == BusinessStatusApproved {
		approvedAt := now
		b.ApprovedAt = &approvedAt
	}

	return nil
}

// SoftDeleteTarget returns the status a business moves to when its owner deletes it.
// Approved listings are suspended; listings still under review are rejected.
func (b *Business) SoftDeleteTarget() (BusinessStatus, bool) {
	switch b.Status {
	case BusinessStatusApproved:
		return BusinessStatusSuspended, true
	case BusinessStatusPending:
		return BusinessStatusRejected, true
	default:
		return "", false
	}
}
