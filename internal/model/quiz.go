package model

// swagger:model Tag
type Tag struct {
	BaseModel
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:7" json:"color"`
}

func (Tag) TableName() string {
	return "tags"
}

// QuizLevel is the difficulty label shown on the catalog card. It is
// unrelated to the user progression chain in UserLevel.
type QuizLevel struct {
	BaseModel
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

func (QuizLevel) TableName() string {
	return "quiz_levels"
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Name         string      `gorm:"size:200;not null" json:"name"`
	Description  string      `gorm:"type:text" json:"description"`
	ImageURL     string      `gorm:"size:255" json:"imageUrl"`
	DepartmentID *uint       `gorm:"index;type:bigint unsigned" json:"departmentId"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	QuizLevelID  *uint       `gorm:"index;type:bigint unsigned" json:"quizLevelId"`
	QuizLevel    *QuizLevel  `gorm:"foreignKey:QuizLevelID" json:"quizLevel,omitempty"`
	Tags         []Tag       `gorm:"many2many:quiz_tags" json:"tags,omitempty"`

	// DurationMinutes is the allotted time shown to the user; the core does
	// not enforce it.
	DurationMinutes int `gorm:"default:0" json:"durationMinutes"`

	// Threshold is the pass threshold in percent, 0..100.
	Threshold int `gorm:"default:70" json:"threshold"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}

// RequiredCorrect returns how many right answers pass the quiz:
// floor(questionCount * threshold / 100).
func (q *Quiz) RequiredCorrect() int {
	return q.QuestionCount() * q.Threshold / 100
}

// Volume is a study material attached to a quiz.
type Volume struct {
	BaseModel
	QuizID      *uint  `gorm:"index;type:bigint unsigned" json:"quizId"`
	Name        string `gorm:"size:500;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Volume) TableName() string {
	return "volumes"
}
