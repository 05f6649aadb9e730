package models

import "time"

type Pastor struct {
	Pastor_ID       int       `json:"pastorId" goqu:"skipinsert"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Phone           *string   `json:"phone"`
	Sort_Order      *int      `json:"sortOrder"`
	Is_Active       *bool     `json:"isActive"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type PastorCreate struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone"`
	Sort_Order *int    `json:"sortOrder"`
	Is_Active  *bool   `json:"isActive"`
}
