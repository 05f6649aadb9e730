package models

import "time"

type Event struct {
	Event_ID        int       `json:"eventId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Event_Date      string    `json:"eventDate"`
	Event_Time      string    `json:"eventTime"`
	Location        string    `json:"location"`
	Is_Featured     *bool     `json:"isFeatured"`
	Status          string    `json:"status"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type EventCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Event_Date  string `json:"eventDate"`
	Event_Time  string `json:"eventTime"`
	Location    string `json:"location"`
	Is_Featured *bool  `json:"isFeatured"`
	Status      string `json:"status"`
}
