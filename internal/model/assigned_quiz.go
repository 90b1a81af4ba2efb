package model

import "time"

// AssignedQuiz marks that an admin explicitly assigned a quiz to a user.
// It only drives the isAssigned flag and the assigned-quiz views; completing
// or passing the quiz never deletes it; revocation is an explicit admin
// action.
type AssignedQuiz struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_assigned_user_quiz,unique;type:bigint unsigned;not null" json:"userId"`
	QuizID     uint      `gorm:"index:idx_assigned_user_quiz,unique;type:bigint unsigned;not null" json:"quizId"`
	AssignedAt time.Time `json:"assignedAt"`

	Quiz *Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
}

func (AssignedQuiz) TableName() string {
	return "assigned_quizzes"
}
