package models

import "time"

type AdminDevice struct {
	Admin_Device_ID int       `json:"adminDeviceId" goqu:"skipinsert"`
	Admin_User_ID   int       `json:"adminUserId"`
	Push_Token      string    `json:"pushToken"`
	Platform        string    `json:"platform"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type AdminDeviceCreate struct {
	Push_Token string `json:"pushToken"`
	Platform   string `json:"platform"`
}
