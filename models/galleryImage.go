package models

import "time"

type GalleryImage struct {
	Gallery_Image_ID int       `json:"galleryImageId" goqu:"skipinsert"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Image_URL        string    `json:"imageUrl"`
	Category         string    `json:"category"`
	Storage_Path     string    `json:"storagePath"`
	Is_Active        *bool     `json:"isActive"`
	Is_Featured      *bool     `json:"isFeatured"`
	Sort_Order       *int      `json:"sortOrder"`
	Datetime_Create  time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update  time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type GalleryImageCreate struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image_URL    string `json:"imageUrl"`
	Category     string `json:"category"`
	Storage_Path string `json:"storagePath"`
	Is_Active    *bool  `json:"isActive"`
	Is_Featured  *bool  `json:"isFeatured"`
	Sort_Order   *int   `json:"sortOrder"`
}
