package repository

import (
	"quiz_platform_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.Preload("Department").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Preload("Department").Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.User{}).Pluck("id", &ids).Error
	return ids, err
}

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Save(d).Error
}

func (r *DepartmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Department{}, id).Error
}

func (r *DepartmentRepository) FindByID(id uint) (*model.Department, error) {
	var d model.Department
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) FindAll() ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Order("name").Find(&ds).Error
	return ds, err
}
