package model

import "time"

// Achievement bundles target values for nine independent counters. A user
// unlocks it only when every dimension is saturated at the same time.
type Achievement struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`

	NumOfCompleted      uint `gorm:"default:0" json:"numOfCompleted"`
	NumOfPassed         uint `gorm:"default:0" json:"numOfPassed"`
	NumOfFailed         uint `gorm:"default:0" json:"numOfFailed"`
	NumOfAssigned       uint `gorm:"default:0" json:"numOfAssigned"`
	NumOfQuestions      uint `gorm:"default:0" json:"numOfQuestions"`
	NumOfRightQuestions uint `gorm:"default:0" json:"numOfRightQuestions"`
	NumOfWrongQuestions uint `gorm:"default:0" json:"numOfWrongQuestions"`
	TimeInQuizzes       uint `gorm:"default:0" json:"timeInQuizzes"`
	Level               uint `gorm:"default:0" json:"level"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// TotalPoints is the sum of all nine targets; progress toward the
// achievement is complete when the saturated sum reaches it.
func (a *Achievement) TotalPoints() uint {
	return a.NumOfCompleted +
		a.NumOfPassed +
		a.NumOfFailed +
		a.NumOfAssigned +
		a.NumOfQuestions +
		a.NumOfRightQuestions +
		a.NumOfWrongQuestions +
		a.TimeInQuizzes +
		a.Level
}

// UserAchievement tracks one user's progress toward one achievement.
// Once Achieved flips to true the row is terminal and never recomputed.
type UserAchievement struct {
	BaseModel
	UserID        uint `gorm:"index:idx_user_achievement,unique;type:bigint unsigned;not null" json:"userId"`
	AchievementID uint `gorm:"index:idx_user_achievement,unique;type:bigint unsigned;not null" json:"achievementId"`

	PointsToGet uint       `gorm:"default:0" json:"pointsToGet"`
	PointsNow   uint       `gorm:"default:0" json:"pointsNow"`
	Achieved    bool       `gorm:"default:false" json:"achieved"`
	AchievedAt  *time.Time `json:"achievedAt,omitempty"`

	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
