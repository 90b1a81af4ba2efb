package repository

import (
	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatisticRepository struct {
	DB *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) *StatisticRepository {
	return &StatisticRepository{DB: db}
}

// FindOrCreateForUpdate loads the (user, quiz) aggregate under a row lock,
// creating it if missing. Must run inside tx: the lock is the per-attempt
// serialization point for concurrent submissions.
func (r *StatisticRepository) FindOrCreateForUpdate(tx *gorm.DB, userID, quizID uint) (*model.Statistic, error) {
	var stat model.Statistic
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&stat).Error
	if err == nil {
		return &stat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	stat = model.Statistic{UserID: userID, QuizID: quizID}
	if err := tx.Create(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *StatisticRepository) Save(tx *gorm.DB, stat *model.Statistic) error {
	return tx.Save(stat).Error
}

func (r *StatisticRepository) FindByUserAndQuiz(userID, quizID uint) (*model.Statistic, error) {
	var stat model.Statistic
	err := r.DB.
		Preload("UserQuestions").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *StatisticRepository) FindByUser(userID uint) ([]model.Statistic, error) {
	var stats []model.Statistic
	err := r.DB.Where("user_id = ?", userID).Find(&stats).Error
	return stats, err
}

// ReplaceUserQuestion deletes any prior record for (statistic, question) and
// inserts the new one. Resubmission is destructive, not additive.
func (r *StatisticRepository) ReplaceUserQuestion(tx *gorm.DB, record *model.UserQuestion) error {
	err := tx.Unscoped().
		Where("statistic_id = ? AND question_id = ?", record.StatisticID, record.QuestionID).
		Delete(&model.UserQuestion{}).Error
	if err != nil {
		return err
	}
	return tx.Create(record).Error
}

func (r *StatisticRepository) FindUserQuestions(tx *gorm.DB, statisticID uint) ([]model.UserQuestion, error) {
	var records []model.UserQuestion
	err := tx.Where("statistic_id = ?", statisticID).Find(&records).Error
	return records, err
}
