package directory

import "github.com/dmitrijs2005/healthguard/internal/models"

func strPtr(s string) *string { return &s }

// DefaultEntries returns the demo accounts, one per role. They are a fixture
// for local runs and tests, not a user store.
func DefaultEntries() []models.CredentialEntry {
	return []models.CredentialEntry{
		{
			Username: "patient",
			Password: "patient123",
			Profile: models.Profile{
				ID:          "JO-2024-00001",
				Username:    "patient",
				Name:        "Zaid Omar",
				Age:         21,
				Role:        models.RolePatient,
				Email:       "zaid.jordan@example.com",
				Phone:       "+962 7 9931 1030",
				Address:     "123 Healthcare Street, Amman, Jordan 11181",
				Location:    "Amman, Jordan",
				Nationality: "Jordanian",
				BloodType:   "A+",
				Allergies:   "None",
				EmergencyContact: models.EmergencyContact{
					Name:     "Omar Ahmad",
					Relation: "Father",
					Phone:    "+962 7 9945 1838",
				},
				AvatarURL: strPtr("/hko.jpg"),
			},
		},
		{
			Username: "doctor",
			Password: "doctor123",
			Profile: models.Profile{
				ID:          "D001",
				Username:    "doctor",
				Name:        "Dr. Sarah Johnson",
				Age:         42,
				Role:        models.RoleDoctor,
				Email:       "dr.sarah@ammanmedical.com",
				Phone:       "+962 6 5000 0001",
				Address:     "Amman Medical Center, King Hussein Medical City, Amman, Jordan 11181",
				Location:    "Amman Medical Center, Jordan",
				Nationality: "Jordanian",
				BloodType:   "O+",
				Allergies:   "None",
				EmergencyContact: models.EmergencyContact{
					Name:     "Medical Center Security",
					Relation: "Work",
					Phone:    "+962 6 5000 0000",
				},
				AvatarURL: strPtr("/dok.jpg"),
			},
		},
		{
			Username: "admin",
			Password: "admin123",
			Profile: models.Profile{
				ID:          "A001",
				Username:    "admin",
				Name:        "System Administrator",
				Age:         35,
				Role:        models.RoleAdmin,
				Email:       "admin@healthguard.jo",
				Phone:       "+962 6 4000 0001",
				Address:     "HealthGuard Headquarters, Business District, Amman, Jordan 11181",
				Location:    "HealthGuard HQ, Amman",
				Nationality: "Jordanian",
				BloodType:   "N/A",
				Allergies:   "None",
				EmergencyContact: models.EmergencyContact{
					Name:     "IT Security Team",
					Relation: "Work",
					Phone:    "+962 6 4000 0000",
				},
				AvatarURL: strPtr("/ram.jpg"),
			},
		},
	}
}
