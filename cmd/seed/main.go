package main

import (
	"log"
	"os"
	"time"

	"telehealth-be/internal/model"
	"telehealth-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type demoDoctor struct {
	Email          string
	FullName       string
	Specialty      string
	Qualifications string
	Experience     int
	Fee            int64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo doctors...")

	doctors := []demoDoctor{
		{"dr.hartono@telecare.dev", "Dr. Budi Hartono", "cardiologist", "MD, FIHA", 12, 350000},
		{"dr.larasati@telecare.dev", "Dr. Ayu Larasati", "gynecologist", "MD, SpOG", 9, 300000},
		{"dr.wijaya@telecare.dev", "Dr. Andi Wijaya", "dermatologist", "MD, SpKK", 7, 250000},
		{"dr.kusuma@telecare.dev", "Dr. Rina Kusuma", "pediatrician", "MD, SpA", 10, 275000},
		{"dr.santoso@telecare.dev", "Dr. Eko Santoso", "neurologist", "MD, SpS", 15, 400000},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: failed to hash seed password:", err)
	}

	availability := datatypes.JSON([]byte(`{
		"monday":    ["09:00 AM", "10:00 AM", "11:00 AM"],
		"wednesday": ["01:00 PM", "02:00 PM", "03:00 PM"],
		"friday":    ["09:00 AM", "10:00 AM"]
	}`))

	for _, d := range doctors {
		var existing model.User
		if err := db.Where("email = ?", d.Email).First(&existing).Error; err == nil {
			color.Yellow("Doctor '%s' already exists, skipping...", d.Email)
			continue
		}

		now := time.Now()
		user := model.User{
			Email:           d.Email,
			PasswordHash:    string(hash),
			FullName:        d.FullName,
			Role:            "DOCTOR",
			Status:          "active",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
		}
		if err := db.Create(&user).Error; err != nil {
			color.Red("Error creating doctor '%s': %v", d.Email, err)
			continue
		}

		profile := model.DoctorProfile{
			UserId:            user.Id,
			Specialty:         d.Specialty,
			Qualifications:    d.Qualifications,
			YearsOfExperience: d.Experience,
			Bio:               "Available for online consultations via TeleCare.",
			ConsultationFee:   d.Fee,
			Availability:      availability,
			Verified:          true,
		}
		if err := db.Create(&profile).Error; err != nil {
			color.Red("Error creating profile for '%s': %v", d.Email, err)
			continue
		}

		color.Green("Created doctor: %s (%s)", d.FullName, d.Specialty)
	}

	color.Cyan("Seeding notification types...")
	SeedNotificationTypes(db)

	color.Green("Seeding completed.")
}
