package model

// Question type tags. The three-letter codes are part of the stored data
// and of the submission payload, so they stay short.
type QuestionType string

const (
	QuestionSingle QuestionType = "ONE" // exactly one correct option
	QuestionMulti  QuestionType = "MNY" // several correct options
	QuestionList   QuestionType = "LST" // match sub-items to their owning answer
	QuestionOpen   QuestionType = "OPN" // free text, exact match
)

// swagger:model Question
type Question struct {
	BaseModel
	QuizID      uint         `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Type        QuestionType `gorm:"type:enum('ONE','MNY','LST','OPN');default:'ONE'" json:"type"`
	Text        string       `gorm:"type:text;not null" json:"text"`
	ImageURL    string       `gorm:"size:255" json:"imageUrl"`
	Explanation string       `gorm:"type:text" json:"explanation"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// RightAnswerCount returns the number of canonical correct answers.
func (q *Question) RightAnswerCount() int {
	n := 0
	for _, a := range q.Answers {
		if a.IsRight {
			n++
		}
	}
	return n
}

// swagger:model Answer
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Text       string `gorm:"size:240;not null" json:"text"`
	ImageURL   string `gorm:"size:255" json:"imageUrl"`
	IsRight    bool   `gorm:"default:false" json:"-"`

	// ListItems holds the sub-items owned by this answer for LST questions;
	// the user must pair every sub-item back to its owner.
	ListItems []AnswerListItem `gorm:"foreignKey:AnswerID" json:"listItems,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

type AnswerListItem struct {
	BaseModel
	AnswerID uint   `gorm:"index;type:bigint unsigned;not null" json:"answerId"`
	Text     string `gorm:"size:240;not null" json:"text"`
}

func (AnswerListItem) TableName() string {
	return "answer_list_items"
}
