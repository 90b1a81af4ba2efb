package service

import (
	"time"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"
	"quiz_platform_backend/pkg/logger"
	"quiz_platform_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
	}
}

// RecomputeAll re-evaluates every achievement known to the system for one
// user, attaching progress rows that do not exist yet. Called after every
// rating recompute.
func (s *AchievementService) RecomputeAll(userID uint, rating *model.Rating, level uint) error {
	achievements, err := s.AchievementRepo.FindAll()
	if err != nil {
		return err
	}

	for i := range achievements {
		if err := s.Recompute(userID, &achievements[i], rating, level); err != nil {
			return err
		}
	}
	return nil
}

// Recompute updates one user's progress toward one achievement. Once the
// achievement is unlocked the row is terminal: later recomputes, even from a
// lower rating snapshot, leave it untouched.
func (s *AchievementService) Recompute(userID uint, achievement *model.Achievement, rating *model.Rating, level uint) error {
	ua, err := s.AchievementRepo.EnsureUserAchievement(userID, achievement.ID)
	if err != nil {
		return err
	}
	if ua.Achieved {
		return nil
	}

	if applyAchievementProgress(ua, rating, level, achievement) {
		monitoring.AchievementsUnlocked.Inc()
		logger.Log.Info("achievement unlocked",
			zap.Uint("userId", userID),
			zap.String("achievement", achievement.Name),
		)
	}

	return s.AchievementRepo.SaveUserAchievement(ua)
}

// applyAchievementProgress folds a rating snapshot into one progress row.
// Achieved rows are terminal: the snapshot never touches them, even when it
// would yield fewer points. Reports whether this call unlocked the
// achievement.
func applyAchievementProgress(ua *model.UserAchievement, rating *model.Rating, level uint, achievement *model.Achievement) bool {
	if ua.Achieved {
		return false
	}

	ua.PointsToGet = achievement.TotalPoints()
	ua.PointsNow = AchievementPoints(rating, level, achievement)

	if ua.PointsNow == ua.PointsToGet {
		now := time.Now()
		ua.Achieved = true
		ua.AchievedAt = &now
		return true
	}
	return false
}

// AchievementPoints sums the nine dimension contributions, each saturating
// at the achievement's target so overshooting one counter can never stand
// in for another.
func AchievementPoints(rating *model.Rating, level uint, achievement *model.Achievement) uint {
	points := minUint(rating.CountCompleted, achievement.NumOfCompleted)
	points += minUint(rating.CountPassed, achievement.NumOfPassed)
	points += minUint(rating.CountFailed, achievement.NumOfFailed)
	points += minUint(rating.CountAssigned, achievement.NumOfAssigned)
	points += minUint(rating.AnsweredQuestions, achievement.NumOfQuestions)
	points += minUint(rating.RightQuestions, achievement.NumOfRightQuestions)
	points += minUint(rating.WrongQuestions, achievement.NumOfWrongQuestions)
	points += minUint(rating.PassedTimeSeconds, achievement.TimeInQuizzes)
	points += minUint(level, achievement.Level)
	return points
}

func minUint(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func (s *AchievementService) GetUserAchievements(userID uint) ([]model.UserAchievement, error) {
	return s.AchievementRepo.FindUserAchievements(userID)
}

type AchievementRequest struct {
	Name                string `json:"name" binding:"required"`
	Description         string `json:"description"`
	ImageURL            string `json:"imageUrl"`
	NumOfCompleted      uint   `json:"numOfCompleted"`
	NumOfPassed         uint   `json:"numOfPassed"`
	NumOfFailed         uint   `json:"numOfFailed"`
	NumOfAssigned       uint   `json:"numOfAssigned"`
	NumOfQuestions      uint   `json:"numOfQuestions"`
	NumOfRightQuestions uint   `json:"numOfRightQuestions"`
	NumOfWrongQuestions uint   `json:"numOfWrongQuestions"`
	TimeInQuizzes       uint   `json:"timeInQuizzes"`
	Level               uint   `json:"level"`
}

// CreateAchievement registers a new achievement and attaches a progress row
// to every existing user.
func (s *AchievementService) CreateAchievement(req AchievementRequest) (*model.Achievement, error) {
	achievement := &model.Achievement{
		Name:                req.Name,
		Description:         req.Description,
		ImageURL:            req.ImageURL,
		NumOfCompleted:      req.NumOfCompleted,
		NumOfPassed:         req.NumOfPassed,
		NumOfFailed:         req.NumOfFailed,
		NumOfAssigned:       req.NumOfAssigned,
		NumOfQuestions:      req.NumOfQuestions,
		NumOfRightQuestions: req.NumOfRightQuestions,
		NumOfWrongQuestions: req.NumOfWrongQuestions,
		TimeInQuizzes:       req.TimeInQuizzes,
		Level:               req.Level,
	}
	if err := s.AchievementRepo.Create(achievement); err != nil {
		return nil, err
	}

	userIDs, err := s.UserRepo.FindIDs()
	if err != nil {
		return nil, err
	}
	for _, uid := range userIDs {
		if _, err := s.AchievementRepo.EnsureUserAchievement(uid, achievement.ID); err != nil {
			return nil, err
		}
	}

	return achievement, nil
}

// UpdateAchievement changes an achievement's definition. Progress rows are
// not retroactively re-evaluated; they catch up on the next rating recompute.
func (s *AchievementService) UpdateAchievement(id uint, req AchievementRequest) (*model.Achievement, error) {
	achievement, err := s.AchievementRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAchievementNotFound
		}
		return nil, err
	}

	achievement.Name = req.Name
	achievement.Description = req.Description
	if req.ImageURL != "" {
		achievement.ImageURL = req.ImageURL
	}
	achievement.NumOfCompleted = req.NumOfCompleted
	achievement.NumOfPassed = req.NumOfPassed
	achievement.NumOfFailed = req.NumOfFailed
	achievement.NumOfAssigned = req.NumOfAssigned
	achievement.NumOfQuestions = req.NumOfQuestions
	achievement.NumOfRightQuestions = req.NumOfRightQuestions
	achievement.NumOfWrongQuestions = req.NumOfWrongQuestions
	achievement.TimeInQuizzes = req.TimeInQuizzes
	achievement.Level = req.Level

	if err := s.AchievementRepo.Update(achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *AchievementService) ListAchievements() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll()
}

func (s *AchievementService) DeleteAchievement(id uint) error {
	if _, err := s.AchievementRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrAchievementNotFound
		}
		return err
	}
	return s.AchievementRepo.Delete(id)
}
