package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int        `json:"prayerRequestId" goqu:"skipinsert"`
	Full_Name         string     `json:"fullName"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone"`
	Prayer_Request    string     `json:"prayerRequest"`
	Status            string     `json:"status"`
	Admin_Notes       *string    `json:"adminNotes"`
	Replied_By        *int       `json:"repliedBy"`
	Datetime_Replied  *time.Time `json:"datetimeReplied"`
	Datetime_Create   time.Time  `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update   time.Time  `json:"datetimeUpdate" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Full_Name      string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Prayer_Request string  `json:"prayerRequest"`
	Status         string  `json:"status"`
}

type PrayerRequestStatusUpdate struct {
	Status      string  `json:"status"`
	Admin_Notes *string `json:"adminNotes"`
}
