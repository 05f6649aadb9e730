package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Service struct {
	Day         string `json:"day"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Sort_Order  int    `json:"sortOrder"`
	Is_Active   *bool  `json:"isActive"`
}

type Contact struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Is_Primary *bool  `json:"isPrimary"`
	Is_Active  *bool  `json:"isActive"`
	Sort_Order int    `json:"sortOrder"`
}

// ServiceList and ContactList persist as JSONB columns on the location table.

type ServiceList []Service

func (s ServiceList) Value() (driver.Value, error) {
	if s == nil {
		s = ServiceList{}
	}
	return json.Marshal(s)
}

func (s *ServiceList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for ServiceList: %T", src)
	}
}

type ContactList []Contact

func (c ContactList) Value() (driver.Value, error) {
	if c == nil {
		c = ContactList{}
	}
	return json.Marshal(c)
}

func (c *ContactList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type for ContactList: %T", src)
	}
}

type Location struct {
	Location_ID     int         `json:"locationId" goqu:"skipinsert"`
	Name            string      `json:"name"`
	Address         string      `json:"address"`
	City            string      `json:"city"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Map_URL         string      `json:"mapUrl"`
	Services        ServiceList `json:"services"`
	Contacts        ContactList `json:"contacts"`
	Is_Active       *bool       `json:"isActive"`
	Sort_Order      *int        `json:"sortOrder"`
	Datetime_Create time.Time   `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time   `json:"datetimeUpdate" goqu:"skipinsert"`
}

type LocationCreate struct {
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Map_URL    string      `json:"mapUrl"`
	Services   ServiceList `json:"services"`
	Contacts   ContactList `json:"contacts"`
	Is_Active  *bool       `json:"isActive"`
	Sort_Order *int        `json:"sortOrder"`
}
