package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeaseStatus represents the lifecycle status of a lease.
// Only Active and Terminated are stored; ExpiringSoon and Expired are
// derived from the lease end date at read time.
type LeaseStatus int

const (
	LeaseStatusActive       LeaseStatus = 0
	LeaseStatusExpiringSoon LeaseStatus = 1
	LeaseStatusExpired      LeaseStatus = 2
	LeaseStatusTerminated   LeaseStatus = 3
)

func (s LeaseStatus) String() string {
	return [...]string{"active", "expiring_soon", "expired", "terminated"}[s]
}

// IsTerminated reports whether the status is the terminal state
func (s LeaseStatus) IsTerminated() bool {
	return s == LeaseStatusTerminated
}

func (s LeaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeaseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeaseStatus(i)
		return nil
	}
	switch str {
	case "active":
		*s = LeaseStatusActive
	case "expiring_soon":
		*s = LeaseStatusExpiringSoon
	case "expired":
		*s = LeaseStatusExpired
	case "terminated":
		*s = LeaseStatusTerminated
	}
	return nil
}

// ParseLeaseStatus parses a status name, for query string filters
func ParseLeaseStatus(str string) (LeaseStatus, bool) {
	switch str {
	case "active":
		return LeaseStatusActive, true
	case "expiring_soon":
		return LeaseStatusExpiringSoon, true
	case "expired":
		return LeaseStatusExpired, true
	case "terminated":
		return LeaseStatusTerminated, true
	}
	return LeaseStatusActive, false
}

func (s LeaseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeaseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeaseStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeaseStatus(v)
	case int:
		*s = LeaseStatus(v)
	}
	return nil
}
