package contract

import (
	"fmt"
	"math"
	"time"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"

	"github.com/google/uuid"
)

const monthYearLayout = "01/2006"

// Interval is a closed date range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the closed intervals share at least one instant.
// Touching boundaries overlap.
func (i Interval) Overlaps(o Interval) bool {
	return !i.Start.After(o.End) && !o.Start.After(i.End)
}

// String formats the interval as MM/YYYY - MM/YYYY.
func (i Interval) String() string {
	return i.Start.Format(monthYearLayout) + " - " + i.End.Format(monthYearLayout)
}

// RequestedInterval is the period a renewal of months would cover, starting at
// the current end date and using calendar-month arithmetic.
func RequestedInterval(endDate time.Time, months int) Interval {
	return Interval{Start: endDate, End: AddMonths(endDate, months)}
}

// AddMonths adds calendar months, clamping the day to the end of the target
// month so that Dec 31 + 6 months is Jun 30 rather than Jul 1.
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), min(t.Day(), lastDay),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ContractInterval returns the date range of c, or false when either bound is unset.
func ContractInterval(c *entity.Contract) (Interval, bool) {
	if c.Terms.StartDate == nil || c.Terms.EndDate == nil {
		return Interval{}, false
	}

	return Interval{Start: *c.Terms.StartDate, End: *c.Terms.EndDate}, true
}

// Conflict identifies the sibling contract blocking a renewal.
type Conflict struct {
	ContractID uuid.UUID `json:"conflictContractId"`
	Range      string    `json:"range"`
}

// FindConflict returns the first live sibling of selfID whose date range
// overlaps candidate. Siblings without both dates are ignored.
func FindConflict(candidate Interval, selfID uuid.UUID, siblings []*entity.Contract) *Conflict {
	for _, sibling := range siblings {
		if sibling == nil || sibling.ID == selfID || !IsLive(sibling.Status) {
			continue
		}

		interval, ok := ContractInterval(sibling)
		if !ok {
			continue
		}

		if candidate.Overlaps(interval) {
			return &Conflict{ContractID: sibling.ID, Range: interval.String()}
		}
	}

	return nil
}

// ConflictError converts a detected conflict into the RENEWAL_CONFLICT error.
func ConflictError(conflict *Conflict) error {
	return domainerrors.ErrRenewalConflict.
		WithMessagef("requested period overlaps contract %s (%s)", conflict.ContractID, conflict.Range).
		WithDetails(conflict)
}

// DaysUntil returns the number of days from now to end, rounded up while end
// is ahead and rounded down once it has passed, so any expired contract is negative.
func DaysUntil(now, end time.Time) int {
	days := end.Sub(now).Hours() / 24
	if days < 0 {
		return int(math.Floor(days))
	}

	return int(math.Ceil(days))
}

// WindowDetails is the structured detail of a RENEWAL_OUT_OF_WINDOW error.
type WindowDetails struct {
	DaysUntilExpiry int `json:"daysUntilExpiry"`
	WindowDays      int `json:"windowDays"`
}

// CheckRenewalWindow accepts 0 <= daysUntilExpiry <= windowDays.
func CheckRenewalWindow(daysUntilExpiry, windowDays int) error {
	if daysUntilExpiry >= 0 && daysUntilExpiry <= windowDays {
		return nil
	}

	msg := fmt.Sprintf("renewal can be requested within %d days before expiry, contract expires in %d days", windowDays, daysUntilExpiry)
	if daysUntilExpiry < 0 {
		msg = fmt.Sprintf("contract expired %d days ago", -daysUntilExpiry)
	}

	return domainerrors.ErrRenewalOutOfWindow.
		WithMessagef("%s", msg).
		WithDetails(WindowDetails{DaysUntilExpiry: daysUntilExpiry, WindowDays: windowDays})
}
