// Package lifecycle is the only place a campaign status changes.
//
//	draft -> active            on successful submission
//	active <-> paused          on user request
//	active | paused -> ended   once the end date has passed
//
// Nothing leaves ended.
package lifecycle

import (
	"slices"
	"time"

	"promo-ads/internal/core/domain"
)

var transitions = map[domain.Status][]domain.Status{
	domain.StatusDraft:  {domain.StatusActive},
	domain.StatusActive: {domain.StatusPaused, domain.StatusEnded},
	domain.StatusPaused: {domain.StatusActive, domain.StatusEnded},
	domain.StatusEnded:  nil,
}

// CanTransition reports whether from -> to is defined.
func CanTransition(from, to domain.Status) bool {
	return slices.Contains(transitions[from], to)
}

// Next lists the statuses reachable from s.
func Next(s domain.Status) []domain.Status {
	return slices.Clone(transitions[s])
}

// Terminal reports whether no transition leaves s.
func Terminal(s domain.Status) bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Transition moves c to status to and stamps UpdatedAt. Undefined
// transitions leave c untouched and return a *domain.TransitionError.
func Transition(c *domain.Campaign, to domain.Status, now time.Time) error {
	if !CanTransition(c.Status, to) {
		return &domain.TransitionError{From: c.Status, To: to}
	}
	c.Status = to
	c.UpdatedAt = now
	return nil
}

// Activate promotes a freshly submitted campaign.
func Activate(c *domain.Campaign, now time.Time) error {
	if c.Status != domain.StatusDraft {
		return &domain.TransitionError{From: c.Status, To: domain.StatusActive}
	}
	return Transition(c, domain.StatusActive, now)
}

// Pause stops an active campaign from serving.
func Pause(c *domain.Campaign, now time.Time) error {
	if c.Status != domain.StatusActive {
		return &domain.TransitionError{From: c.Status, To: domain.StatusPaused}
	}
	return Transition(c, domain.StatusPaused, now)
}

// Resume puts a paused campaign back to serving.
func Resume(c *domain.Campaign, now time.Time) error {
	if c.Status != domain.StatusPaused {
		return &domain.TransitionError{From: c.Status, To: domain.StatusActive}
	}
	return Transition(c, domain.StatusActive, now)
}

// End closes a campaign whose end date has passed. The caller owns the
// clock; End only checks that today is past the end date.
func End(c *domain.Campaign, today, now time.Time) error {
	if !c.Expired(today) {
		return &domain.TransitionError{From: c.Status, To: domain.StatusEnded}
	}
	return Transition(c, domain.StatusEnded, now)
}
