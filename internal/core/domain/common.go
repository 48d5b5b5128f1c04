package domain

import "time"

// DateLayout is the calendar date format used for ledger dates and budget periods.
// Values in this layout sort lexically in chronological order.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// IsValidDate reports whether s is a real calendar date in DateLayout.
func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// FormatDate renders t as a ledger date in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
