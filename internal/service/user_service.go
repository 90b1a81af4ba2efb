package service

import (
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	DepartmentRepo *repository.DepartmentRepository
}

func NewUserService(userRepo *repository.UserRepository, departmentRepo *repository.DepartmentRepository) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		DepartmentRepo: departmentRepo,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type ProfileUpdateRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AvatarURL    string `json:"avatarUrl"`
	DepartmentID *uint  `json:"departmentId"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepo.FindByID(*req.DepartmentID); err != nil {
			return nil, err
		}
		user.DepartmentID = req.DepartmentID
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) ListDepartments() ([]model.Department, error) {
	return s.DepartmentRepo.FindAll()
}

func (s *UserService) CreateDepartment(d *model.Department) error {
	return s.DepartmentRepo.Create(d)
}

func (s *UserService) UpdateDepartment(id uint, name, description string) (*model.Department, error) {
	department, err := s.DepartmentRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	department.Name = name
	department.Description = description
	if err := s.DepartmentRepo.Update(department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *UserService) DeleteDepartment(id uint) error {
	if _, err := s.DepartmentRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrDepartmentNotFound
		}
		return err
	}
	return s.DepartmentRepo.Delete(id)
}
