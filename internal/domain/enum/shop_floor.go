package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ShopFloor represents the floor a shop is located on
type ShopFloor int

const (
	ShopFloorGround ShopFloor = 0
	ShopFloorFirst  ShopFloor = 1
	ShopFloorSecond ShopFloor = 2
	ShopFloorSubedari ShopFloor = 3
)

func (f ShopFloor) String() string {
	return [...]string{"ground", "first", "second", "subedari"}[f]
}

func (f ShopFloor) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *ShopFloor) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*f = ShopFloor(i)
		return nil
	}
	switch str {
	case "ground":
		*f = ShopFloorGround
	case "first":
		*f = ShopFloorFirst
	case "second":
		*f = ShopFloorSecond
	case "subedari":
		*f = ShopFloorSubedari
	}
	return nil
}

// ParseShopFloor parses a floor name, for query string filters
func ParseShopFloor(s string) (ShopFloor, bool) {
	switch s {
	case "ground":
		return ShopFloorGround, true
	case "first":
		return ShopFloorFirst, true
	case "second":
		return ShopFloorSecond, true
	case "subedari":
		return ShopFloorSubedari, true
	}
	return ShopFloorGround, false
}

func (f ShopFloor) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *ShopFloor) Scan(value interface{}) error {
	if value == nil {
		*f = ShopFloorGround
		return nil
	}
	switch v := value.(type) {
	case int64:
		*f = ShopFloor(v)
	case int:
		*f = ShopFloor(v)
	}
	return nil
}

// SubedariCategory distinguishes shop and residential units on the subedari floor
type SubedariCategory int

const (
	SubedariCategoryShops       SubedariCategory = 0
	SubedariCategoryResidential SubedariCategory = 1
)

func (c SubedariCategory) String() string {
	return [...]string{"shops", "residential"}[c]
}

func (c SubedariCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *SubedariCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = SubedariCategory(i)
		return nil
	}
	switch str {
	case "shops":
		*c = SubedariCategoryShops
	case "residential":
		*c = SubedariCategoryResidential
	}
	return nil
}

func (c SubedariCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *SubedariCategory) Scan(value interface{}) error {
	if value == nil {
		*c = SubedariCategoryShops
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = SubedariCategory(v)
	case int:
		*c = SubedariCategory(v)
	}
	return nil
}
