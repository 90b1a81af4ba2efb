package model

type UserRole string

const (
	Admin    UserRole = "admin"
	Employee UserRole = "employee"
)

// swagger:model User
type User struct {
	BaseModel
	Email        string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string      `gorm:"size:255;not null" json:"-"`
	FirstName    string      `gorm:"size:100" json:"firstName"`
	LastName     string      `gorm:"size:100" json:"lastName"`
	Role         UserRole    `gorm:"type:enum('admin','employee');default:'employee'" json:"role"`
	AvatarURL    string      `gorm:"size:255" json:"avatarUrl"`
	DepartmentID *uint       `gorm:"index;type:bigint unsigned" json:"departmentId"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Department scopes the quiz catalog: a user only sees quizzes of their
// own department.
type Department struct {
	BaseModel
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Department) TableName() string {
	return "departments"
}
