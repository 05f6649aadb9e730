package models

import "time"

type AdminUser struct {
	Admin_User_ID   int       `json:"adminUserId" goqu:"skipinsert"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Email           string    `json:"email"`
	First_Name      string    `json:"firstName"`
	Last_Name       string    `json:"lastName"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
