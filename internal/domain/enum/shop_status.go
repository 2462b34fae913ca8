package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ShopStatus represents the occupancy status of a shop
type ShopStatus int

const (
	ShopStatusVacant   ShopStatus = 0
	ShopStatusOccupied ShopStatus = 1
)

func (s ShopStatus) String() string {
	return [...]string{"vacant", "occupied"}[s]
}

func (s ShopStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ShopStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ShopStatus(i)
		return nil
	}
	switch str {
	case "vacant":
		*s = ShopStatusVacant
	case "occupied":
		*s = ShopStatusOccupied
	}
	return nil
}

// ParseShopStatus parses a status name, for query string filters
func ParseShopStatus(str string) (ShopStatus, bool) {
	switch str {
	case "vacant":
		return ShopStatusVacant, true
	case "occupied":
		return ShopStatusOccupied, true
	}
	return ShopStatusVacant, false
}

func (s ShopStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ShopStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ShopStatusVacant
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ShopStatus(v)
	case int:
		*s = ShopStatus(v)
	}
	return nil
}

// OwnershipType represents whether a shop belongs to a single owner or all owners jointly
type OwnershipType int

const (
	OwnershipTypeSole   OwnershipType = 0
	OwnershipTypeCommon OwnershipType = 1
)

func (t OwnershipType) String() string {
	return [...]string{"sole", "common"}[t]
}

func (t OwnershipType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OwnershipType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OwnershipType(i)
		return nil
	}
	switch str {
	case "sole":
		*t = OwnershipTypeSole
	case "common":
		*t = OwnershipTypeCommon
	}
	return nil
}

func (t OwnershipType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OwnershipType) Scan(value interface{}) error {
	if value == nil {
		*t = OwnershipTypeSole
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OwnershipType(v)
	case int:
		*t = OwnershipType(v)
	}
	return nil
}
