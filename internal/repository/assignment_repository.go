package repository

import (
	"time"

	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// Assign is an upsert: re-assigning an already assigned quiz is a no-op.
func (r *AssignmentRepository) Assign(userID, quizID uint) error {
	var existing model.AssignedQuiz
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	assignment := model.AssignedQuiz{
		UserID:     userID,
		QuizID:     quizID,
		AssignedAt: time.Now(),
	}
	return r.DB.Create(&assignment).Error
}

func (r *AssignmentRepository) Revoke(userID, quizID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Delete(&model.AssignedQuiz{}).Error
}

func (r *AssignmentRepository) Exists(userID, quizID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AssignedQuiz{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count > 0, err
}

func (r *AssignmentRepository) FindByUser(userID uint) ([]model.AssignedQuiz, error) {
	var assignments []model.AssignedQuiz
	err := r.DB.
		Preload("Quiz").
		Preload("Quiz.QuizLevel").
		Preload("Quiz.Tags").
		Where("user_id = ?", userID).
		Order("assigned_at desc").
		Find(&assignments).Error
	return assignments, err
}
