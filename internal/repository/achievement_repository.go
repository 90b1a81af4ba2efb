package repository

import (
	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(a *model.Achievement) error {
	return r.DB.Create(a).Error
}

func (r *AchievementRepository) Update(a *model.Achievement) error {
	return r.DB.Save(a).Error
}

func (r *AchievementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Achievement{}, id).Error
}

func (r *AchievementRepository) FindByID(id uint) (*model.Achievement, error) {
	var a model.Achievement
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AchievementRepository) FindAll() ([]model.Achievement, error) {
	var as []model.Achievement
	err := r.DB.Order("id").Find(&as).Error
	return as, err
}

// EnsureUserAchievement creates the progress row for (user, achievement) if
// it does not exist yet. Every achievement is attached to every user.
func (r *AchievementRepository) EnsureUserAchievement(userID, achievementID uint) (*model.UserAchievement, error) {
	var ua model.UserAchievement
	err := r.DB.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&ua).Error
	if err == nil {
		return &ua, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	ua = model.UserAchievement{UserID: userID, AchievementID: achievementID}
	if err := r.DB.Create(&ua).Error; err != nil {
		return nil, err
	}
	return &ua, nil
}

func (r *AchievementRepository) SaveUserAchievement(ua *model.UserAchievement) error {
	return r.DB.Save(ua).Error
}

func (r *AchievementRepository) FindUserAchievements(userID uint) ([]model.UserAchievement, error) {
	var uas []model.UserAchievement
	err := r.DB.
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("achievement_id").
		Find(&uas).Error
	return uas, err
}
