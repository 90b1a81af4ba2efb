package repository

import (
	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// FindByID loads the quiz with its full question/answer tree, including the
// canonical list pairings. Grading needs the whole tree.
func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions").
		Preload("Questions.Answers").
		Preload("Questions.Answers.ListItems").
		Preload("Department").
		Preload("QuizLevel").
		Preload("Tags").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByDepartment returns the catalog visible to one department.
func (r *QuizRepository) FindByDepartment(departmentID *uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	query := r.DB.
		Preload("Questions").
		Preload("QuizLevel").
		Preload("Tags")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	err := query.Order("id").Find(&quizzes).Error
	return quizzes, err
}

// CountByDepartment is the denominator of the passProgress view.
func (r *QuizRepository) CountByDepartment(departmentID *uint) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Quiz{})
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.
		Preload("Answers").
		Preload("Answers.ListItems").
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

type VolumeRepository struct {
	DB *gorm.DB
}

func NewVolumeRepository(db *gorm.DB) *VolumeRepository {
	return &VolumeRepository{DB: db}
}

func (r *VolumeRepository) Create(v *model.Volume) error {
	return r.DB.Create(v).Error
}

func (r *VolumeRepository) FindByQuizID(quizID uint) ([]model.Volume, error) {
	var vs []model.Volume
	err := r.DB.Where("quiz_id = ?", quizID).Order("id").Find(&vs).Error
	return vs, err
}

func (r *VolumeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Volume{}, id).Error
}
