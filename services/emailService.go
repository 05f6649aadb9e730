package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendConfirmationEmail confirms to a submitter that their prayer request was received
func (s *EmailService) SendConfirmationEmail(toEmail string, fullName string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #8a6d3b;
        }
        .header h1 {
            color: #8a6d3b;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Cornerstone Church</h1>
    </div>

    <div class="content">
        <h2>We Received Your Prayer Request</h2>

        <p>Dear %s,</p>

        <p>Thank you for sharing your prayer request with us. Our prayer team has received it and will be lifting you up in prayer.</p>

        <p>If you asked to be contacted, a member of our pastoral team will reach out to you soon.</p>

        <p>"Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God." — Philippians 4:6</p>

        <p>Blessings,<br>The Cornerstone Church Prayer Team</p>
    </div>

    <div class="footer">
        <p>&copy; 2025 Cornerstone Church. All rights reserved.</p>
        <p>This is an automated message, please do not reply directly to this email.</p>
    </div>
</body>
</html>
`, fullName)

	textBody := fmt.Sprintf(`
We Received Your Prayer Request

Dear %s,

Thank you for sharing your prayer request with us. Our prayer team has received it and will be lifting you up in prayer.

If you asked to be contacted, a member of our pastoral team will reach out to you soon.

Blessings,
The Cornerstone Church Prayer Team
`, fullName)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "We received your prayer request",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent confirmation email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendAdminNotificationEmail alerts the church admin inbox about a new prayer request
func (s *EmailService) SendAdminNotificationEmail(fullName string, email string, phone string, prayerText string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL not configured")
	}

	if phone == "" {
		phone = "not provided"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #8a6d3b;
        }
        .header h1 {
            color: #8a6d3b;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .request-box {
            background-color: #f5f5f5;
            border-left: 4px solid #8a6d3b;
            border-radius: 4px;
            padding: 15px;
            margin: 20px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Cornerstone Church</h1>
    </div>

    <div class="content">
        <h2>New Prayer Request</h2>

        <p><strong>From:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>

        <div class="request-box">
            <p>%s</p>
        </div>

        <p>Log in to the admin panel to respond or update its status.</p>
    </div>

    <div class="footer">
        <p>&copy; 2025 Cornerstone Church. All rights reserved.</p>
    </div>
</body>
</html>
`, fullName, email, phone, prayerText)

	textBody := fmt.Sprintf(`
New Prayer Request

From: %s
Email: %s
Phone: %s

%s

Log in to the admin panel to respond or update its status.
`, fullName, email, phone, prayerText)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("New prayer request from %s", fullName),
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send admin notification email to %s: %v", adminEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent admin notification email to %s. Email ID: %s", adminEmail, sent.Id)
	return nil
}

// SendReplyEmail delivers an admin's personal reply to a prayer request submitter
func (s *EmailService) SendReplyEmail(toEmail string, fullName string, message string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #8a6d3b;
        }
        .header h1 {
            color: #8a6d3b;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .message-box {
            background-color: #f5f5f5;
            border-left: 4px solid #8a6d3b;
            border-radius: 4px;
            padding: 15px;
            margin: 20px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Cornerstone Church</h1>
    </div>

    <div class="content">
        <h2>A Message From Our Pastoral Team</h2>

        <p>Dear %s,</p>

        <div class="message-box">
            <p>%s</p>
        </div>

        <p>You are always welcome to reply to this email or visit us at any of our services.</p>

        <p>Blessings,<br>The Cornerstone Church Prayer Team</p>
    </div>

    <div class="footer">
        <p>&copy; 2025 Cornerstone Church. All rights reserved.</p>
    </div>
</body>
</html>
`, fullName, message)

	textBody := fmt.Sprintf(`
A Message From Our Pastoral Team

Dear %s,

%s

You are always welcome to reply to this email or visit us at any of our services.

Blessings,
The Cornerstone Church Prayer Team
`, fullName, message)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "A reply to your prayer request",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send reply email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent reply email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}
