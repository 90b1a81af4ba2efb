package service

import (
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	VolumeRepo *repository.VolumeRepository
	StatRepo   *repository.StatisticRepository
	AssignRepo *repository.AssignmentRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	volumeRepo *repository.VolumeRepository,
	statRepo *repository.StatisticRepository,
	assignRepo *repository.AssignmentRepository,
) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		VolumeRepo: volumeRepo,
		StatRepo:   statRepo,
		AssignRepo: assignRepo,
	}
}

// QuizSummary is one catalog card: the quiz annotated with whether it was
// assigned to the requesting user.
type QuizSummary struct {
	Quiz          *model.Quiz `json:"quiz"`
	QuestionCount int         `json:"questionCount"`
	Appointed     bool        `json:"appointed"`
}

// ListForUser returns the catalog of the user's department, each quiz
// annotated with the assignment flag.
func (s *QuizService) ListForUser(userID uint, departmentID *uint) ([]QuizSummary, error) {
	quizzes, err := s.QuizRepo.FindByDepartment(departmentID)
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for i := range quizzes {
		appointed, err := s.AssignRepo.Exists(userID, quizzes[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, QuizSummary{
			Quiz:          &quizzes[i],
			QuestionCount: quizzes[i].QuestionCount(),
			Appointed:     appointed,
		})
	}
	return summaries, nil
}

// ListNotCompleted returns department quizzes the user has started but not
// finished.
func (s *QuizService) ListNotCompleted(userID uint, departmentID *uint) ([]QuizSummary, error) {
	all, err := s.ListForUser(userID, departmentID)
	if err != nil {
		return nil, err
	}

	stats, err := s.StatRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	started := make(map[uint]bool, len(stats))
	for _, st := range stats {
		if st.CountAnswered > 0 && !st.IsCompleted {
			started[st.QuizID] = true
		}
	}

	inProgress := make([]QuizSummary, 0)
	for _, summary := range all {
		if started[summary.Quiz.ID] {
			inProgress = append(inProgress, summary)
		}
	}
	return inProgress, nil
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetVolumes(quizID uint) ([]model.Volume, error) {
	return s.VolumeRepo.FindByQuizID(quizID)
}

type VolumeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *QuizService) CreateVolume(quizID uint, req VolumeRequest) (*model.Volume, error) {
	if _, err := s.GetQuiz(quizID); err != nil {
		return nil, err
	}

	volume := &model.Volume{
		QuizID:      &quizID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.VolumeRepo.Create(volume); err != nil {
		return nil, err
	}
	return volume, nil
}

func (s *QuizService) DeleteVolume(id uint) error {
	return s.VolumeRepo.Delete(id)
}
