package main

import (
	"log"

	"telehealth-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry that maps bus events to
// user-facing notifications.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "Welcome",
			Template:    "Welcome to TeleCare! Verify your email to activate your account.",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
		},
		{
			Code:        "USER_LOGIN",
			DisplayName: "Login Activity",
			Template:    "You logged in from {device} at {time}",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
		},
		{
			Code:        "APPOINTMENT_BOOKED",
			DisplayName: "New Appointment",
			Template:    "A new appointment was booked for {date} at {time}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "APPOINTMENT_STATUS_CHANGED",
			DisplayName: "Appointment Update",
			Template:    "Your appointment status changed from {old_status} to {new_status}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "RECORD_SHARED",
			DisplayName: "Medical Record Shared",
			Template:    "A medical record was shared with you: \"{title}\"",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "TRIAGE_EMERGENCY",
			DisplayName: "Emergency Triage Alert",
			Template:    "Emergency triage outcome for session {session_id}. Suggested specialist: {suggested_specialist}",
			TargetType:  "ROLE",
			TargetRole:  "DOCTOR",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "PAYMENT_SETTLED",
			DisplayName: "Payment Received",
			Template:    "Your payment of {amount} for appointment {appointment_id} was received.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
	}

	for _, t := range types {
		var existing model.NotificationType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			log.Printf("Notification type '%s' already exists, skipping...", t.Code)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating notification type '%s': %v", t.Code, err)
		} else {
			log.Printf("Created notification type: %s", t.Code)
		}
	}
}
