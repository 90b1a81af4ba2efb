package service

import (
	"testing"
	"time"

	"quiz_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementPointsSaturation(t *testing.T) {
	achievement := &model.Achievement{
		NumOfCompleted: 5,
		NumOfPassed:    3,
	}

	rating := &model.Rating{
		CountCompleted: 8, // overshoots the target of 5
		CountPassed:    1,
	}

	// min(8,5) + min(1,3): overshooting one dimension never stands in for
	// another.
	assert.Equal(t, uint(6), AchievementPoints(rating, 0, achievement))
}

func TestAchievementPointsAllDimensions(t *testing.T) {
	achievement := &model.Achievement{
		NumOfCompleted:      2,
		NumOfPassed:         2,
		NumOfFailed:         1,
		NumOfAssigned:       1,
		NumOfQuestions:      10,
		NumOfRightQuestions: 8,
		NumOfWrongQuestions: 2,
		TimeInQuizzes:       60,
		Level:               2,
	}

	rating := &model.Rating{
		CountCompleted:    2,
		CountPassed:       2,
		CountFailed:       1,
		CountAssigned:     1,
		AnsweredQuestions: 10,
		RightQuestions:    8,
		WrongQuestions:    2,
		PassedTimeSeconds: 60,
	}

	points := AchievementPoints(rating, 2, achievement)
	assert.Equal(t, achievement.TotalPoints(), points)
	assert.Equal(t, uint(88), points)
}

func TestAchievementPointsEmptyRating(t *testing.T) {
	achievement := &model.Achievement{NumOfCompleted: 1, NumOfPassed: 1}

	assert.Equal(t, uint(0), AchievementPoints(&model.Rating{}, 0, achievement))
}

func TestAchievementPointsZeroTargets(t *testing.T) {
	// An achievement with all-zero targets is trivially complete: every
	// dimension saturates at zero.
	achievement := &model.Achievement{}
	rating := &model.Rating{CountCompleted: 5, RightQuestions: 100}

	points := AchievementPoints(rating, 3, achievement)
	assert.Equal(t, uint(0), points)
	assert.Equal(t, achievement.TotalPoints(), points)
}

func TestApplyAchievementProgressUnlocks(t *testing.T) {
	achievement := &model.Achievement{NumOfCompleted: 1, NumOfPassed: 1}
	rating := &model.Rating{CountCompleted: 1, CountPassed: 1}
	ua := &model.UserAchievement{}

	unlocked := applyAchievementProgress(ua, rating, 0, achievement)

	assert.True(t, unlocked)
	assert.True(t, ua.Achieved)
	assert.Equal(t, uint(2), ua.PointsToGet)
	assert.Equal(t, uint(2), ua.PointsNow)
	require.NotNil(t, ua.AchievedAt)
	assert.WithinDuration(t, time.Now(), *ua.AchievedAt, time.Minute)
}

func TestApplyAchievementProgressPartial(t *testing.T) {
	achievement := &model.Achievement{NumOfCompleted: 2}
	ua := &model.UserAchievement{}

	unlocked := applyAchievementProgress(ua, &model.Rating{CountCompleted: 1}, 0, achievement)

	assert.False(t, unlocked)
	assert.False(t, ua.Achieved)
	assert.Nil(t, ua.AchievedAt)
	assert.Equal(t, uint(1), ua.PointsNow)
}

func TestApplyAchievementProgressTerminal(t *testing.T) {
	achievement := &model.Achievement{NumOfCompleted: 1}
	achievedAt := time.Now().Add(-time.Hour)
	ua := &model.UserAchievement{
		PointsToGet: 1,
		PointsNow:   1,
		Achieved:    true,
		AchievedAt:  &achievedAt,
	}

	// A later snapshot with fewer points must leave the unlocked row alone.
	unlocked := applyAchievementProgress(ua, &model.Rating{}, 0, achievement)

	assert.False(t, unlocked)
	assert.True(t, ua.Achieved)
	assert.Equal(t, uint(1), ua.PointsNow)
	require.NotNil(t, ua.AchievedAt)
	assert.Equal(t, achievedAt, *ua.AchievedAt)
}

func TestTotalPoints(t *testing.T) {
	achievement := &model.Achievement{
		NumOfCompleted:      1,
		NumOfPassed:         2,
		NumOfFailed:         3,
		NumOfAssigned:       4,
		NumOfQuestions:      5,
		NumOfRightQuestions: 6,
		NumOfWrongQuestions: 7,
		TimeInQuizzes:       8,
		Level:               9,
	}

	assert.Equal(t, uint(45), achievement.TotalPoints())
}
