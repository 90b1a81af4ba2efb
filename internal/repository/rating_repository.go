package repository

import (
	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// FindOrCreateForUpdate loads the user's rating under a row lock, creating
// it at the bottom of the level chain if missing. Two attempts completing
// concurrently for the same user serialize here.
func (r *RatingRepository) FindOrCreateForUpdate(tx *gorm.DB, userID uint, firstLevelID uint) (*model.Rating, error) {
	var rating model.Rating
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&rating).Error
	if err == nil {
		return &rating, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	rating = model.Rating{UserID: userID, UserLevelID: firstLevelID}
	if err := tx.Create(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Save(tx *gorm.DB, rating *model.Rating) error {
	return tx.Save(rating).Error
}

func (r *RatingRepository) FindByUser(userID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.
		Preload("UserLevel").
		Preload("UserLevel.PrevLevel").
		Where("user_id = ?", userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindTop returns the leaderboard ordering: best rating first, faster total
// time breaking ties.
func (r *RatingRepository) FindTop(limit int) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.
		Preload("User").
		Preload("UserLevel").
		Order("user_rating desc, passed_time_seconds asc").
		Limit(limit).
		Find(&ratings).Error
	return ratings, err
}

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) Create(level *model.UserLevel) error {
	return r.DB.Create(level).Error
}

func (r *LevelRepository) Update(level *model.UserLevel) error {
	return r.DB.Save(level).Error
}

func (r *LevelRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserLevel{}, id).Error
}

func (r *LevelRepository) FindByID(id uint) (*model.UserLevel, error) {
	var level model.UserLevel
	if err := r.DB.Preload("PrevLevel").First(&level, id).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// FindChain returns the whole level chain ordered by level number.
func (r *LevelRepository) FindChain() ([]model.UserLevel, error) {
	var levels []model.UserLevel
	err := r.DB.Order("level").Find(&levels).Error
	return levels, err
}

func (r *LevelRepository) First() (*model.UserLevel, error) {
	var level model.UserLevel
	if err := r.DB.Order("level").First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}
