package service

import (
	"context"
	"encoding/json"
	"time"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"
	"quiz_platform_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const leaderboardCacheKey = "leaderboard:top"
const leaderboardCacheSize = 100
const leaderboardCacheTTL = 30 * time.Second

type RatingService struct {
	RatingRepo  *repository.RatingRepository
	LevelRepo   *repository.LevelRepository
	StatRepo    *repository.StatisticRepository
	QuizRepo    *repository.QuizRepository
	Achievement *AchievementService
	DB          *gorm.DB
	Redis       *redis.Client
}

func NewRatingService(
	ratingRepo *repository.RatingRepository,
	levelRepo *repository.LevelRepository,
	statRepo *repository.StatisticRepository,
	quizRepo *repository.QuizRepository,
	achievement *AchievementService,
	db *gorm.DB,
	rdb *redis.Client,
) *RatingService {
	return &RatingService{
		RatingRepo:  ratingRepo,
		LevelRepo:   levelRepo,
		StatRepo:    statRepo,
		QuizRepo:    quizRepo,
		Achievement: achievement,
		DB:          db,
		Redis:       rdb,
	}
}

// Recompute rebuilds the user's rating from their full attempt history.
// Total recomputation keeps the result correct no matter how many attempts
// changed state, in what order, or concurrently.
func (s *RatingService) Recompute(userID uint) error {
	stats, err := s.StatRepo.FindByUser(userID)
	if err != nil {
		return err
	}

	chain, err := s.LevelRepo.FindChain()
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return util.ErrLevelNotFound
	}

	var rating *model.Rating
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		rating, txErr = s.RatingRepo.FindOrCreateForUpdate(tx, userID, chain[0].ID)
		if txErr != nil {
			return txErr
		}

		ReduceRating(rating, stats)

		next := AdvanceLevel(rating.UserLevelID, chain, rating.CountPassed)
		rating.UserLevelID = next.ID

		return s.RatingRepo.Save(tx, rating)
	})
	if err != nil {
		return err
	}

	s.invalidateLeaderboard()

	level := levelNumber(rating.UserLevelID, chain)
	if err := s.Achievement.RecomputeAll(userID, rating, level); err != nil {
		return err
	}

	logger.Log.Debug("rating recomputed",
		zap.Uint("userId", userID),
		zap.Uint("rating", rating.UserRating),
		zap.Uint("level", level),
	)
	return nil
}

// ReduceRating folds the full attempt history into the rating counters.
// Question counters and times are summed over passed attempts only.
func ReduceRating(rating *model.Rating, stats []model.Statistic) {
	var completed, passed, assigned uint
	var answered, right, passedTime uint

	for _, st := range stats {
		if st.IsCompleted {
			completed++
		}
		if !st.IsPassed {
			continue
		}
		passed++
		if st.IsAssigned {
			assigned++
		}
		answered += uint(st.CountAnswered)
		right += uint(st.CountRight)
		passedTime += uint(st.QuizTimeSeconds)
	}

	rating.CountCompleted = completed
	rating.CountPassed = passed
	rating.CountFailed = completed - passed
	rating.CountAssigned = assigned
	rating.AnsweredQuestions = answered
	rating.RightQuestions = right
	rating.WrongQuestions = answered - right
	rating.PassedTimeSeconds = passedTime

	if right > rating.WrongQuestions {
		rating.UserRating = right - rating.WrongQuestions
	} else {
		rating.UserRating = 0
	}
}

// AdvanceLevel walks the ordered chain at most one step: advance only when
// the current level is not the last and its threshold is already met. A
// single step per recompute call mirrors one quiz completing at a time.
func AdvanceLevel(currentLevelID uint, chain []model.UserLevel, countPassed uint) *model.UserLevel {
	idx := 0
	for i := range chain {
		if chain[i].ID == currentLevelID {
			idx = i
			break
		}
	}

	if idx < len(chain)-1 && chain[idx].ToLevelUp <= countPassed {
		return &chain[idx+1]
	}
	return &chain[idx]
}

func levelNumber(levelID uint, chain []model.UserLevel) uint {
	for i := range chain {
		if chain[i].ID == levelID {
			return chain[i].Level
		}
	}
	return 0
}

// RatingView adds the read-only derived numbers to the persisted rating.
type RatingView struct {
	Rating *model.Rating `json:"rating"`

	// PassProgress is the percentage of the department's quizzes passed.
	PassProgress  int `json:"passProgress"`
	ToNextLevel   int `json:"toNextLevel"`
	InThisLevel   int `json:"inThisLevel"`
	EarnedInLevel int `json:"earnedInLevel"`
	RightPercent  int `json:"rightPercent"`
}

func (s *RatingService) GetUserRating(userID uint, departmentID *uint) (*RatingView, error) {
	rating, err := s.RatingRepo.FindByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// No completed attempt yet: present an empty rating at the
			// bottom of the chain without persisting anything.
			first, ferr := s.LevelRepo.First()
			if ferr != nil {
				return nil, ferr
			}
			rating = &model.Rating{UserID: userID, UserLevelID: first.ID, UserLevel: first}
		} else {
			return nil, err
		}
	}

	available, err := s.QuizRepo.CountByDepartment(departmentID)
	if err != nil {
		return nil, err
	}

	return buildRatingView(rating, available), nil
}

func buildRatingView(rating *model.Rating, availableQuizzes int64) *RatingView {
	view := &RatingView{Rating: rating}

	if availableQuizzes > 0 {
		view.PassProgress = int(rating.CountPassed) * 100 / int(availableQuizzes)
	}
	if rating.AnsweredQuestions > 0 {
		view.RightPercent = int(rating.RightQuestions) * 100 / int(rating.AnsweredQuestions)
	}

	level := rating.UserLevel
	if level == nil {
		return view
	}

	view.ToNextLevel = int(level.ToLevelUp) - int(rating.CountPassed)
	if level.Level != 1 && level.PrevLevel != nil {
		view.InThisLevel = int(level.ToLevelUp) - int(level.PrevLevel.ToLevelUp)
		view.EarnedInLevel = int(rating.CountPassed) - int(level.PrevLevel.ToLevelUp)
	} else {
		view.InThisLevel = int(level.ToLevelUp)
		view.EarnedInLevel = int(rating.CountPassed)
	}
	return view
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            uint   `json:"userId"`
	Name              string `json:"name"`
	Rating            uint   `json:"rating"`
	Level             uint   `json:"level"`
	PassedTimeSeconds uint   `json:"passedTimeSeconds"`
}

// Leaderboard returns the top ratings, best first, tie broken by total time
// in passed quizzes. The top slice is cached in redis and invalidated on
// every rating recompute.
func (s *RatingService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > leaderboardCacheSize {
		limit = 10
	}

	if cached := s.cachedLeaderboard(); cached != nil {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	ratings, err := s.RatingRepo.FindTop(leaderboardCacheSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(ratings))
	for i, r := range ratings {
		entries[i] = LeaderboardEntry{
			Rank:              i + 1,
			UserID:            r.UserID,
			Rating:            r.UserRating,
			PassedTimeSeconds: r.PassedTimeSeconds,
		}
		if r.User != nil {
			entries[i].Name = r.User.FirstName + " " + r.User.LastName
		}
		if r.UserLevel != nil {
			entries[i].Level = r.UserLevel.Level
		}
	}

	s.storeLeaderboard(entries)

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *RatingService) cachedLeaderboard() []LeaderboardEntry {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(context.Background(), leaderboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func (s *RatingService) storeLeaderboard(entries []LeaderboardEntry) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), leaderboardCacheKey, raw, leaderboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}

func (s *RatingService) invalidateLeaderboard() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
