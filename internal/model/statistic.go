package model

// Statistic is the per-(user, quiz) attempt aggregate. It is created lazily
// on the first submitted answer and recomputed wholesale from the full set of
// UserQuestion records on every submission.
//
// Invariants: IsCompleted ⇔ CountAnswered == CountQuestions;
// IsPassed/IsFailed only while completed, never both.
type Statistic struct {
	BaseModel
	UserID uint `gorm:"index:idx_statistic_user_quiz,unique;type:bigint unsigned;not null" json:"userId"`
	QuizID uint `gorm:"index:idx_statistic_user_quiz,unique;type:bigint unsigned;not null" json:"quizId"`

	CountQuestions int `gorm:"default:0" json:"countQuestions"`
	CountAnswered  int `gorm:"default:0" json:"countAnswered"`
	CountRight     int `gorm:"default:0" json:"countRight"`
	CountWrong     int `gorm:"default:0" json:"countWrong"`

	// QuizTimeSeconds is the sum of per-question response times.
	QuizTimeSeconds int `gorm:"default:0" json:"quizTimeSeconds"`

	IsCompleted bool `gorm:"default:false" json:"isCompleted"`
	IsPassed    bool `gorm:"default:false" json:"isPassed"`
	IsFailed    bool `gorm:"default:false" json:"isFailed"`
	IsAssigned  bool `gorm:"default:false" json:"isAssigned"`

	Quiz          *Quiz          `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	UserQuestions []UserQuestion `gorm:"foreignKey:StatisticID" json:"userQuestions,omitempty"`
}

func (Statistic) TableName() string {
	return "statistics"
}

// UserQuestion is the graded record of one answered question inside one
// attempt: one row per (statistic, question). Resubmission replaces the row.
type UserQuestion struct {
	BaseModel
	StatisticID uint `gorm:"index:idx_user_question,unique;type:bigint unsigned;not null" json:"statisticId"`
	QuestionID  uint `gorm:"index:idx_user_question,unique;type:bigint unsigned;not null" json:"questionId"`

	ResponseTimeSeconds int  `gorm:"default:0" json:"responseTimeSeconds"`
	IsRight             bool `gorm:"default:false" json:"isRight"`

	// Submission keeps the raw user payload for the review screen.
	Submission string `gorm:"type:json" json:"submission"`
}

func (UserQuestion) TableName() string {
	return "user_questions"
}
