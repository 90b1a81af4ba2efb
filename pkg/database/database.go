package database

import (
	"fmt"
	"log"

	"quiz_platform_backend/internal/config"
	"quiz_platform_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Tag{},
		&model.QuizLevel{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.AnswerListItem{},
		&model.Volume{},
		&model.AssignedQuiz{},
		&model.Statistic{},
		&model.UserQuestion{},
		&model.UserLevel{},
		&model.Rating{},
		&model.Achievement{},
		&model.UserAchievement{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedUserLevels(db); err != nil {
		return nil, err
	}
	if err := seedAchievements(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedUserLevels inserts the progression chain once, at startup. Lazy
// get-or-create of level 1 on first access would race under concurrent
// rating recomputes.
func seedUserLevels(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.UserLevel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	chain := []struct {
		level     uint
		toLevelUp uint
		desc      string
	}{
		{1, 1, "Novice"},
		{2, 3, "Apprentice"},
		{3, 6, "Specialist"},
		{4, 10, "Expert"},
		{5, 15, "Master"},
	}

	var prevID *uint
	for _, l := range chain {
		lvl := model.UserLevel{
			Level:       l.level,
			ToLevelUp:   l.toLevelUp,
			Description: l.desc,
			PrevLevelID: prevID,
		}
		if err := db.Create(&lvl).Error; err != nil {
			return err
		}
		id := lvl.ID
		prevID = &id
	}

	log.Println("User level chain seeded")
	return nil
}

func seedAchievements(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Achievement{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	first := model.Achievement{
		Name:           "First steps",
		Description:    "Complete and pass your first quiz",
		NumOfCompleted: 1,
		NumOfPassed:    1,
	}
	return db.Create(&first).Error
}
