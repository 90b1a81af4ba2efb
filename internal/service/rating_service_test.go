package service

import (
	"testing"

	"quiz_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func level(id, levelNum, toLevelUp uint, prev *model.UserLevel) model.UserLevel {
	l := model.UserLevel{
		BaseModel: model.BaseModel{ID: id},
		Level:     levelNum,
		ToLevelUp: toLevelUp,
	}
	if prev != nil {
		prevID := prev.ID
		l.PrevLevelID = &prevID
		l.PrevLevel = prev
	}
	return l
}

func testChain() []model.UserLevel {
	l1 := level(1, 1, 1, nil)
	l2 := level(2, 2, 3, &l1)
	l3 := level(3, 3, 6, &l2)
	return []model.UserLevel{l1, l2, l3}
}

func passedStat(answered, right, seconds int, assigned bool) model.Statistic {
	return model.Statistic{
		CountAnswered:   answered,
		CountRight:      right,
		CountWrong:      answered - right,
		QuizTimeSeconds: seconds,
		IsCompleted:     true,
		IsPassed:        true,
		IsAssigned:      assigned,
	}
}

func failedStat(answered, right int) model.Statistic {
	return model.Statistic{
		CountAnswered: answered,
		CountRight:    right,
		CountWrong:    answered - right,
		IsCompleted:   true,
		IsFailed:      true,
	}
}

func TestReduceRatingEmptyHistory(t *testing.T) {
	rating := &model.Rating{}
	ReduceRating(rating, nil)

	assert.Zero(t, rating.CountCompleted)
	assert.Zero(t, rating.CountPassed)
	assert.Zero(t, rating.CountFailed)
	assert.Zero(t, rating.UserRating)
}

func TestReduceRatingSumsPassedAttemptsOnly(t *testing.T) {
	rating := &model.Rating{}
	ReduceRating(rating, []model.Statistic{
		passedStat(10, 8, 120, true),
		passedStat(5, 5, 60, false),
		failedStat(10, 2),
		{CountAnswered: 3, CountRight: 3}, // in progress, not completed
	})

	assert.Equal(t, uint(3), rating.CountCompleted)
	assert.Equal(t, uint(2), rating.CountPassed)
	assert.Equal(t, uint(1), rating.CountFailed)
	assert.Equal(t, uint(1), rating.CountAssigned)

	// Question counters come from passed attempts only: the failed attempt's
	// 10 answered questions do not count.
	assert.Equal(t, uint(15), rating.AnsweredQuestions)
	assert.Equal(t, uint(13), rating.RightQuestions)
	assert.Equal(t, uint(2), rating.WrongQuestions)
	assert.Equal(t, uint(180), rating.PassedTimeSeconds)

	assert.Equal(t, uint(11), rating.UserRating)
}

func TestReduceRatingNeverNegative(t *testing.T) {
	rating := &model.Rating{}
	ReduceRating(rating, []model.Statistic{passedStat(10, 4, 30, false)})

	// 4 right vs 6 wrong would be negative; the rating floors at zero.
	assert.Equal(t, uint(0), rating.UserRating)
}

func TestReduceRatingOverwritesStaleCounters(t *testing.T) {
	rating := &model.Rating{
		CountCompleted: 42,
		CountPassed:    42,
		UserRating:     42,
	}
	ReduceRating(rating, []model.Statistic{passedStat(2, 2, 10, false)})

	assert.Equal(t, uint(1), rating.CountCompleted)
	assert.Equal(t, uint(1), rating.CountPassed)
	assert.Equal(t, uint(2), rating.UserRating)
}

func TestAdvanceLevel(t *testing.T) {
	chain := testChain()

	tests := []struct {
		name        string
		currentID   uint
		countPassed uint
		wantID      uint
	}{
		{"below threshold stays", 1, 0, 1},
		{"threshold met advances one step", 1, 1, 2},
		{"far past threshold still one step", 1, 10, 2},
		{"middle of chain advances", 2, 3, 3},
		{"one under middle threshold stays", 2, 2, 2},
		{"top of chain never advances", 3, 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := AdvanceLevel(tt.currentID, chain, tt.countPassed)
			assert.Equal(t, tt.wantID, next.ID)
		})
	}
}

// Walks one attempt from grading records through the statistic recompute,
// the rating reduction and the level advance, the same path RecordAnswer
// drives through the datastore.
func TestAttemptToRatingFlow(t *testing.T) {
	quiz := quizWithQuestions(4, 50)
	chain := testChain()

	stat := &model.Statistic{}
	RecomputeStatistic(stat, quiz, []model.UserQuestion{
		record(1, true, 30),
		record(2, true, 20),
		record(3, false, 10),
		record(4, false, 40),
	}, true)

	assert.True(t, stat.IsCompleted)
	assert.True(t, stat.IsPassed) // 2 of 4 right at 50%

	rating := &model.Rating{UserLevelID: chain[0].ID}
	ReduceRating(rating, []model.Statistic{*stat})

	assert.Equal(t, uint(1), rating.CountPassed)
	assert.Equal(t, uint(1), rating.CountAssigned)
	assert.Equal(t, uint(4), rating.AnsweredQuestions)
	assert.Equal(t, uint(2), rating.RightQuestions)
	assert.Equal(t, uint(100), rating.PassedTimeSeconds)
	assert.Equal(t, uint(0), rating.UserRating) // 2 right - 2 wrong

	// One pass meets level 1's threshold of 1: advance to level 2.
	next := AdvanceLevel(rating.UserLevelID, chain, rating.CountPassed)
	assert.Equal(t, uint(2), next.Level)
}

func TestBuildRatingView(t *testing.T) {
	chain := testChain()
	l2 := chain[1]

	rating := &model.Rating{
		CountPassed:       2,
		AnsweredQuestions: 20,
		RightQuestions:    15,
		WrongQuestions:    5,
		UserLevelID:       l2.ID,
		UserLevel:         &l2,
	}

	view := buildRatingView(rating, 8)

	assert.Equal(t, 25, view.PassProgress) // 2 of 8 quizzes
	assert.Equal(t, 75, view.RightPercent)
	assert.Equal(t, 1, view.ToNextLevel)   // toLevelUp 3, passed 2
	assert.Equal(t, 2, view.InThisLevel)   // 3 - prev level's 1
	assert.Equal(t, 1, view.EarnedInLevel) // passed 2 - prev level's 1
}

func TestBuildRatingViewAtFirstLevel(t *testing.T) {
	chain := testChain()
	l1 := chain[0]

	rating := &model.Rating{
		UserLevelID: l1.ID,
		UserLevel:   &l1,
	}

	view := buildRatingView(rating, 0)

	assert.Equal(t, 0, view.PassProgress)
	assert.Equal(t, 0, view.RightPercent)
	assert.Equal(t, 1, view.ToNextLevel)
	assert.Equal(t, 1, view.InThisLevel)
	assert.Equal(t, 0, view.EarnedInLevel)
}
