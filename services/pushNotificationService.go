package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type PushNotificationService struct {
	fcmClient *messaging.Client
}

var pushService *PushNotificationService

func InitPushNotificationService() {
	pushService = &PushNotificationService{}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	var app *firebase.App
	var err error

	if serviceAccountPath != "" {
		opt := option.WithCredentialsFile(serviceAccountPath)
		app, err = firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with service account: %v", err)
			return
		}
		log.Println("Firebase initialized with service account file")
	} else {
		// Application Default Credentials
		app, err = firebase.NewApp(context.Background(), nil)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with ADC: %v", err)
			return
		}
		log.Println("Firebase initialized with Application Default Credentials")
	}

	pushService.fcmClient, err = app.Messaging(context.Background())
	if err != nil {
		log.Printf("Failed to get Firebase messaging client: %v", err)
		return
	}

	log.Println("Push notification service initialized successfully with FCM")
}

func GetPushNotificationService() *PushNotificationService {
	return pushService
}

// NotifyAdminsNewPrayerRequest pings every registered admin device about a new
// prayer request. Failures are logged per device and never block the caller.
func (s *PushNotificationService) NotifyAdminsNewPrayerRequest(fullName string) error {
	if s == nil || s.fcmClient == nil {
		return fmt.Errorf("push notification service not initialized")
	}

	var devices []models.AdminDevice
	err := initializers.DB.From("admin_device").ScanStructs(&devices)
	if err != nil {
		return fmt.Errorf("failed to get admin devices: %v", err)
	}

	if len(devices) == 0 {
		return nil
	}

	for _, device := range devices {
		message := &messaging.Message{
			Token: device.Push_Token,
			Notification: &messaging.Notification{
				Title: "New prayer request",
				Body:  fmt.Sprintf("%s submitted a prayer request", fullName),
			},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		response, err := s.fcmClient.Send(ctx, message)
		cancel()
		if err != nil {
			log.Printf("Failed to send FCM notification to device %d: %v", device.Admin_Device_ID, err)
			continue
		}

		log.Printf("Successfully sent FCM notification. Message ID: %s", response)
	}

	return nil
}
