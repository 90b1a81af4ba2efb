package service

import (
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

type AssignmentService struct {
	AssignRepo *repository.AssignmentRepository
}

func NewAssignmentService(assignRepo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{AssignRepo: assignRepo}
}

type BulkAssignRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
	QuizIDs []uint `json:"quizIds" binding:"required"`
}

// BulkAssign assigns every listed quiz to every listed user. Existing
// assignments are left in place.
func (s *AssignmentService) BulkAssign(req BulkAssignRequest) error {
	for _, userID := range req.UserIDs {
		for _, quizID := range req.QuizIDs {
			if err := s.AssignRepo.Assign(userID, quizID); err != nil {
				return err
			}
		}
	}

	logger.Log.Info("quizzes assigned",
		zap.Int("users", len(req.UserIDs)),
		zap.Int("quizzes", len(req.QuizIDs)),
	)
	return nil
}

// Revoke removes an assignment. The core never calls this on completion;
// clearing assignments after a pass is a boundary policy, the admin decides.
func (s *AssignmentService) Revoke(userID, quizID uint) error {
	return s.AssignRepo.Revoke(userID, quizID)
}

func (s *AssignmentService) ListForUser(userID uint) ([]model.AssignedQuiz, error) {
	return s.AssignRepo.FindByUser(userID)
}
