package models

import (
	"errors"
	"time"
)

type BreakState string

const (
	BreakOpen   BreakState = "open"
	BreakClosed BreakState = "closed"
)

var ErrNoStartTime = errors.New("break has no start time")

// Break is one rest interval. EndTime and Duration stay nil while the break is open.
type Break struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   *time.Time
	Duration  *int64 // seconds
	CreatedAt time.Time
}

func (b *Break) State() BreakState {
	if b.EndTime == nil {
		return BreakOpen
	}
	return BreakClosed
}

// Close sets the end time and recomputes the duration from the original start, in
// whole seconds rounded toward zero. Closing an already closed break overwrites it.
func (b *Break) Close(end time.Time) error {
	if b.StartTime.IsZero() {
		return ErrNoStartTime
	}
	seconds := int64(end.Sub(b.StartTime) / time.Second)
	b.EndTime = &end
	b.Duration = &seconds
	return nil
}

func (b *Break) DurationSeconds() int64 {
	if b.Duration == nil {
		return 0
	}
	return *b.Duration
}
