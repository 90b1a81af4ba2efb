// Seed a demo department, an admin account and one sample quiz covering all
// four question types. Intended for a fresh local database.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"

	"quiz_platform_backend/internal/config"
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	department := model.Department{Name: "Engineering"}
	if err := db.FirstOrCreate(&department, model.Department{Name: "Engineering"}).Error; err != nil {
		log.Fatalf("Failed to seed department: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin := model.User{
		Email:     "admin@example.com",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      model.Admin,
	}
	if err := db.FirstOrCreate(&admin, model.User{Email: "admin@example.com"}).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	var count int64
	if err := db.Model(&model.Quiz{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count quizzes: %v", err)
	}
	if count > 0 {
		log.Println("Quizzes already present, nothing to do")
		return
	}

	quiz := model.Quiz{
		Name:            "Onboarding basics",
		Description:     "A short quiz covering the company onboarding material.",
		DepartmentID:    &department.ID,
		DurationMinutes: 10,
		Threshold:       50,
		Questions: []model.Question{
			{
				Type: model.QuestionSingle,
				Text: "Which door do you use for the office entrance?",
				Answers: []model.Answer{
					{Text: "The north door", IsRight: true},
					{Text: "The south door"},
					{Text: "The loading dock"},
				},
			},
			{
				Type: model.QuestionMulti,
				Text: "Which of these are company values?",
				Answers: []model.Answer{
					{Text: "Transparency", IsRight: true},
					{Text: "Ownership", IsRight: true},
					{Text: "Secrecy"},
				},
			},
			{
				Type: model.QuestionOpen,
				Text: "What is the IT helpdesk extension?",
				Answers: []model.Answer{
					{Text: "4242", IsRight: true},
				},
			},
			{
				Type: model.QuestionList,
				Text: "Match each tool to its purpose.",
				Answers: []model.Answer{
					{
						Text:    "Communication",
						IsRight: true,
						ListItems: []model.AnswerListItem{
							{Text: "Email"},
							{Text: "Chat"},
						},
					},
					{
						Text:    "Planning",
						IsRight: true,
						ListItems: []model.AnswerListItem{
							{Text: "Issue tracker"},
						},
					},
				},
			},
		},
	}
	if err := db.Create(&quiz).Error; err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	log.Printf("Seeded demo data: department %d, admin %d, quiz %d", department.ID, admin.ID, quiz.ID)
}
