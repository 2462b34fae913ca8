package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseAllocation represents how an expense is billed:
// to a single owner or shared equally across all owners
type ExpenseAllocation int

const (
	ExpenseAllocationOwner  ExpenseAllocation = 0
	ExpenseAllocationCommon ExpenseAllocation = 1
)

func (a ExpenseAllocation) String() string {
	return [...]string{"owner", "common"}[a]
}

func (a ExpenseAllocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *ExpenseAllocation) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*a = ExpenseAllocation(i)
		return nil
	}
	switch str {
	case "owner":
		*a = ExpenseAllocationOwner
	case "common":
		*a = ExpenseAllocationCommon
	}
	return nil
}

// ParseExpenseAllocation parses an allocation name, for query string filters
func ParseExpenseAllocation(str string) (ExpenseAllocation, bool) {
	switch str {
	case "owner":
		return ExpenseAllocationOwner, true
	case "common":
		return ExpenseAllocationCommon, true
	}
	return ExpenseAllocationOwner, false
}

func (a ExpenseAllocation) Value() (driver.Value, error) {
	return int64(a), nil
}

func (a *ExpenseAllocation) Scan(value interface{}) error {
	if value == nil {
		*a = ExpenseAllocationCommon
		return nil
	}
	switch v := value.(type) {
	case int64:
		*a = ExpenseAllocation(v)
	case int:
		*a = ExpenseAllocation(v)
	}
	return nil
}
