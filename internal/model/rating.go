package model

// UserLevel is one link of the progression chain, strictly ordered by Level.
// ToLevelUp is the count of passed quizzes required to leave this level for
// the next one. Level 1 has no previous level.
//
// The chain is seeded at startup; there is no lazy get-or-create.
type UserLevel struct {
	BaseModel
	Level       uint   `gorm:"uniqueIndex;not null" json:"level"`
	Description string `gorm:"size:100" json:"description"`
	ToLevelUp   uint   `gorm:"default:1" json:"toLevelUp"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`

	PrevLevelID *uint      `gorm:"index;type:bigint unsigned" json:"prevLevelId"`
	PrevLevel   *UserLevel `gorm:"foreignKey:PrevLevelID" json:"prevLevel,omitempty"`
}

func (UserLevel) TableName() string {
	return "user_levels"
}

// Rating is the per-user progression aggregate, recomputed wholesale from
// the user's full Statistic history whenever an attempt completes.
type Rating struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`

	CountCompleted uint `gorm:"default:0" json:"countCompleted"`
	CountPassed    uint `gorm:"default:0" json:"countPassed"`
	CountFailed    uint `gorm:"default:0" json:"countFailed"`
	CountAssigned  uint `gorm:"default:0" json:"countAssigned"`

	// Question counters below are summed over passed attempts only.
	AnsweredQuestions uint `gorm:"default:0" json:"answeredQuestions"`
	RightQuestions    uint `gorm:"default:0" json:"rightQuestions"`
	WrongQuestions    uint `gorm:"default:0" json:"wrongQuestions"`
	PassedTimeSeconds uint `gorm:"default:0" json:"passedTimeSeconds"`

	// UserRating = max(0, right - wrong).
	UserRating uint `gorm:"default:0" json:"userRating"`

	UserLevelID uint       `gorm:"index;type:bigint unsigned" json:"userLevelId"`
	UserLevel   *UserLevel `gorm:"foreignKey:UserLevelID" json:"userLevel,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
