package service

import (
	"encoding/json"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"
	"quiz_platform_backend/pkg/logger"
	"quiz_platform_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatisticService struct {
	StatRepo   *repository.StatisticRepository
	QuizRepo   *repository.QuizRepository
	AssignRepo *repository.AssignmentRepository
	Grader     *GradingService
	Rating     *RatingService
	DB         *gorm.DB
}

func NewStatisticService(
	statRepo *repository.StatisticRepository,
	quizRepo *repository.QuizRepository,
	assignRepo *repository.AssignmentRepository,
	grader *GradingService,
	rating *RatingService,
	db *gorm.DB,
) *StatisticService {
	return &StatisticService{
		StatRepo:   statRepo,
		QuizRepo:   quizRepo,
		AssignRepo: assignRepo,
		Grader:     grader,
		Rating:     rating,
		DB:         db,
	}
}

type AnswerSubmissionRequest struct {
	QuestionID          uint       `json:"questionId" binding:"required"`
	ResponseTimeSeconds int        `json:"responseTimeSeconds"`
	Answer              Submission `json:"answer"`
}

// RecordAnswer grades one submitted answer and folds it into the (user,
// quiz) attempt aggregate. The aggregate is always recomputed wholesale from
// the full record set, which makes resubmission idempotent and makes
// out-of-order submissions safe: the last writer recomputes from whatever
// records exist.
func (s *StatisticService) RecordAnswer(userID, quizID uint, req AnswerSubmissionRequest) (*model.Statistic, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question, err := s.QuizRepo.FindQuestionByID(req.QuestionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	if question.QuizID != quiz.ID {
		return nil, util.ErrMismatchedQuiz
	}

	verdict, err := s.Grader.Grade(question, req.Answer)
	if err != nil {
		return nil, err
	}

	submissionJSON, err := json.Marshal(req.Answer)
	if err != nil {
		return nil, err
	}

	assigned, err := s.AssignRepo.Exists(userID, quizID)
	if err != nil {
		return nil, err
	}

	var stat *model.Statistic
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		stat, txErr = s.StatRepo.FindOrCreateForUpdate(tx, userID, quizID)
		if txErr != nil {
			return txErr
		}

		record := &model.UserQuestion{
			StatisticID:         stat.ID,
			QuestionID:          question.ID,
			ResponseTimeSeconds: req.ResponseTimeSeconds,
			IsRight:             verdict.IsRight,
			Submission:          string(submissionJSON),
		}
		if txErr = s.StatRepo.ReplaceUserQuestion(tx, record); txErr != nil {
			return txErr
		}

		records, txErr := s.StatRepo.FindUserQuestions(tx, stat.ID)
		if txErr != nil {
			return txErr
		}

		RecomputeStatistic(stat, quiz, records, assigned)
		return s.StatRepo.Save(tx, stat)
	})
	if err != nil {
		return nil, err
	}

	monitoring.AnswersGraded.WithLabelValues(string(question.Type), verdictLabel(verdict)).Inc()

	if stat.IsCompleted {
		result := "failed"
		if stat.IsPassed {
			result = "passed"
		}
		monitoring.QuizzesCompleted.WithLabelValues(result).Inc()

		logger.Log.Info("quiz attempt completed",
			zap.Uint("userId", userID),
			zap.Uint("quizId", quizID),
			zap.Bool("passed", stat.IsPassed),
		)

		if err := s.Rating.Recompute(userID); err != nil {
			return nil, err
		}
	}

	return stat, nil
}

// RecomputeStatistic rebuilds the aggregate from scratch over the full
// record set for the attempt. Never derives from previous counter values.
func RecomputeStatistic(stat *model.Statistic, quiz *model.Quiz, records []model.UserQuestion, assigned bool) {
	stat.CountQuestions = quiz.QuestionCount()
	stat.CountAnswered = len(records)

	right := 0
	timeSum := 0
	for _, rec := range records {
		if rec.IsRight {
			right++
		}
		timeSum += rec.ResponseTimeSeconds
	}

	stat.CountRight = right
	stat.CountWrong = stat.CountAnswered - right
	stat.QuizTimeSeconds = timeSum

	stat.IsCompleted = stat.CountAnswered == stat.CountQuestions
	stat.IsPassed = stat.IsCompleted && right >= quiz.RequiredCorrect()
	stat.IsFailed = stat.IsCompleted && !stat.IsPassed
	stat.IsAssigned = assigned
}

// QuestionReview pairs one answered question with its catalog explanation
// for the post-completion review screen.
type QuestionReview struct {
	QuestionID  uint            `json:"questionId"`
	Text        string          `json:"text"`
	Explanation string          `json:"explanation"`
	IsRight     bool            `json:"isRight"`
	Submission  json.RawMessage `json:"submission"`

	ResponseTimeSeconds int `json:"responseTimeSeconds"`
}

type StatisticView struct {
	Statistic *model.Statistic `json:"statistic"`
	Review    []QuestionReview `json:"review"`
}

// GetStatistic returns the attempt snapshot with the per-question review.
func (s *StatisticService) GetStatistic(userID, quizID uint) (*StatisticView, error) {
	stat, err := s.StatRepo.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		return nil, asStatisticNotFound(err)
	}

	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	questionsByID := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questionsByID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	review := make([]QuestionReview, 0, len(stat.UserQuestions))
	for _, rec := range stat.UserQuestions {
		entry := QuestionReview{
			QuestionID:          rec.QuestionID,
			IsRight:             rec.IsRight,
			Submission:          json.RawMessage(rec.Submission),
			ResponseTimeSeconds: rec.ResponseTimeSeconds,
		}
		if q, ok := questionsByID[rec.QuestionID]; ok {
			entry.Text = q.Text
			entry.Explanation = q.Explanation
		}
		review = append(review, entry)
	}

	return &StatisticView{Statistic: stat, Review: review}, nil
}

// asStatisticNotFound translates a missing attempt row into its own sentinel.
// The quiz itself may exist; the user simply has not started it.
func asStatisticNotFound(err error) error {
	if err == gorm.ErrRecordNotFound {
		return util.ErrStatisticNotFound
	}
	return err
}

func verdictLabel(v Verdict) string {
	if v.IsRight {
		return "right"
	}
	return "wrong"
}
