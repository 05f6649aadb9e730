package controllers

import (
	"time"

	"github.com/CornerstoneChurch/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockAdmin creates a sample admin user for testing
func MockAdmin() models.AdminUser {
	return models.AdminUser{
		Admin_User_ID:   1,
		Username:        "admin",
		Email:           "admin@example.com",
		First_Name:      "Church",
		Last_Name:       "Admin",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockAdminWithPassword creates a sample admin user with a bcrypt hashed password
// Password is "admin123" - use this in tests
func MockAdminWithPassword() models.AdminUser {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return models.AdminUser{
		Admin_User_ID:   1,
		Username:        "admin",
		Password:        string(hashedPassword),
		Email:           "admin@example.com",
		First_Name:      "Church",
		Last_Name:       "Admin",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockEvent creates a sample event for testing
func MockEvent() models.Event {
	featured := false
	return models.Event{
		Event_ID:        1,
		Title:           "Easter Sunday Service",
		Description:     "Join us for our Easter celebration",
		Event_Date:      "2025-04-20",
		Event_Time:      "10:00",
		Location:        "Main Sanctuary",
		Is_Featured:     &featured,
		Status:          "active",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockPrayerRequest creates a sample pending prayer request for testing
func MockPrayerRequest() models.PrayerRequest {
	return models.PrayerRequest{
		Prayer_Request_ID: 1,
		Full_Name:         "Jane Doe",
		Email:             "jane@example.com",
		Prayer_Request:    "Please pray for my family",
		Status:            "pending",
		Datetime_Create:   time.Now(),
		Datetime_Update:   time.Now(),
	}
}
