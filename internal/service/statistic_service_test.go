package service

import (
	"errors"
	"testing"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func quizWithQuestions(n, threshold int) *model.Quiz {
	q := &model.Quiz{Threshold: threshold}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, model.Question{BaseModel: model.BaseModel{ID: uint(i + 1)}})
	}
	return q
}

func record(questionID uint, right bool, seconds int) model.UserQuestion {
	return model.UserQuestion{QuestionID: questionID, IsRight: right, ResponseTimeSeconds: seconds}
}

func TestRecomputeStatisticPartialAttempt(t *testing.T) {
	quiz := quizWithQuestions(4, 50)
	stat := &model.Statistic{}

	RecomputeStatistic(stat, quiz, []model.UserQuestion{
		record(1, true, 10),
		record(2, false, 5),
	}, false)

	assert.Equal(t, 4, stat.CountQuestions)
	assert.Equal(t, 2, stat.CountAnswered)
	assert.Equal(t, 1, stat.CountRight)
	assert.Equal(t, 1, stat.CountWrong)
	assert.Equal(t, 15, stat.QuizTimeSeconds)
	assert.False(t, stat.IsCompleted)
	assert.False(t, stat.IsPassed)
	assert.False(t, stat.IsFailed)
}

func TestRecomputeStatisticCompletionPasses(t *testing.T) {
	quiz := quizWithQuestions(4, 50)
	stat := &model.Statistic{}

	RecomputeStatistic(stat, quiz, []model.UserQuestion{
		record(1, true, 10),
		record(2, true, 10),
		record(3, false, 10),
		record(4, false, 10),
	}, true)

	// 2 of 4 right meets the 50% threshold exactly.
	assert.True(t, stat.IsCompleted)
	assert.True(t, stat.IsPassed)
	assert.False(t, stat.IsFailed)
	assert.True(t, stat.IsAssigned)
	assert.Equal(t, 40, stat.QuizTimeSeconds)
}

func TestRecomputeStatisticCompletionFails(t *testing.T) {
	quiz := quizWithQuestions(4, 50)
	stat := &model.Statistic{}

	RecomputeStatistic(stat, quiz, []model.UserQuestion{
		record(1, true, 1),
		record(2, false, 1),
		record(3, false, 1),
		record(4, false, 1),
	}, false)

	assert.True(t, stat.IsCompleted)
	assert.False(t, stat.IsPassed)
	assert.True(t, stat.IsFailed)
}

func TestRecomputeStatisticThresholdBoundary(t *testing.T) {
	// 10 questions at 70% requires exactly 7 right answers.
	quiz := quizWithQuestions(10, 70)

	tests := []struct {
		name   string
		right  int
		passed bool
	}{
		{"one under the threshold", 6, false},
		{"exactly the threshold", 7, true},
		{"over the threshold", 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []model.UserQuestion
			for i := 1; i <= 10; i++ {
				records = append(records, record(uint(i), i <= tt.right, 1))
			}

			stat := &model.Statistic{}
			RecomputeStatistic(stat, quiz, records, false)

			assert.True(t, stat.IsCompleted)
			assert.Equal(t, tt.passed, stat.IsPassed)
			assert.Equal(t, !tt.passed, stat.IsFailed)
		})
	}
}

func TestRecomputeStatisticIdempotent(t *testing.T) {
	quiz := quizWithQuestions(3, 70)
	records := []model.UserQuestion{
		record(1, true, 7),
		record(2, true, 3),
		record(3, true, 5),
	}

	first := &model.Statistic{}
	RecomputeStatistic(first, quiz, records, true)

	second := &model.Statistic{}
	RecomputeStatistic(second, quiz, records, true)
	RecomputeStatistic(second, quiz, records, true)

	assert.Equal(t, first, second)
}

func TestRecomputeStatisticOverwritesStaleCounters(t *testing.T) {
	quiz := quizWithQuestions(2, 50)

	// Counters left over from a previous recompute must not leak through.
	stat := &model.Statistic{
		CountAnswered: 99,
		CountRight:    99,
		CountWrong:    99,
		IsCompleted:   true,
		IsPassed:      true,
	}

	RecomputeStatistic(stat, quiz, []model.UserQuestion{record(1, false, 2)}, false)

	assert.Equal(t, 1, stat.CountAnswered)
	assert.Equal(t, 0, stat.CountRight)
	assert.Equal(t, 1, stat.CountWrong)
	assert.False(t, stat.IsCompleted)
	assert.False(t, stat.IsPassed)
	assert.False(t, stat.IsFailed)
}

func TestAsStatisticNotFound(t *testing.T) {
	// A missing attempt row is its own condition, not a missing quiz.
	err := asStatisticNotFound(gorm.ErrRecordNotFound)
	assert.Equal(t, util.ErrStatisticNotFound, err)
	assert.NotEqual(t, util.ErrQuizNotFound, err)

	boom := errors.New("connection reset")
	assert.Equal(t, boom, asStatisticNotFound(boom))
}
