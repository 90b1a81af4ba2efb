package service

import (
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/util"
)

// Submission is a user's response to one question. Which fields are used
// depends on the question type: AnswerIDs for ONE/MNY, Text for OPN, Pairs
// for LST.
type Submission struct {
	AnswerIDs []uint     `json:"answerIds,omitempty"`
	Text      string     `json:"text,omitempty"`
	Pairs     []ListPair `json:"pairs,omitempty"`
}

// ListPair maps one canonical sub-item to the answer the user chose as its
// owner.
type ListPair struct {
	ItemID         uint `json:"itemId"`
	ChosenAnswerID uint `json:"chosenAnswerId"`
}

type Verdict struct {
	IsRight bool `json:"isRight"`
}

// GradingService decides correctness of a submission against the canonical
// answer set. It is stateless and deterministic; the caller persists the
// verdict.
type GradingService struct{}

func NewGradingService() *GradingService {
	return &GradingService{}
}

func (s *GradingService) Grade(question *model.Question, sub Submission) (Verdict, error) {
	switch question.Type {
	case model.QuestionSingle:
		return s.gradeSingle(question, sub)
	case model.QuestionMulti:
		return s.gradeMulti(question, sub)
	case model.QuestionOpen:
		return s.gradeOpen(question, sub)
	case model.QuestionList:
		return s.gradeList(question, sub)
	default:
		return Verdict{}, util.ErrUnknownQuestionType
	}
}

// gradeSingle: right iff the one submitted answer is the correct one. An
// empty submission is simply wrong, not an error.
func (s *GradingService) gradeSingle(question *model.Question, sub Submission) (Verdict, error) {
	if len(question.Answers) == 0 {
		return Verdict{}, util.ErrMissingCanonicalAnswer
	}
	if len(sub.AnswerIDs) == 0 {
		return Verdict{IsRight: false}, nil
	}

	chosen := sub.AnswerIDs[0]
	for _, a := range question.Answers {
		if a.ID == chosen {
			return Verdict{IsRight: a.IsRight}, nil
		}
	}
	return Verdict{IsRight: false}, nil
}

// gradeMulti: right iff the number of correct answers the user selected
// equals the number of correct answers that exist. Note this does not check
// that the user selected zero incorrect ones; the behavior is kept as-is
// pending product clarification (see DESIGN.md) and pinned by a test.
func (s *GradingService) gradeMulti(question *model.Question, sub Submission) (Verdict, error) {
	rightByID := make(map[uint]bool, len(question.Answers))
	for _, a := range question.Answers {
		if a.IsRight {
			rightByID[a.ID] = true
		}
	}

	selectedRight := 0
	for _, id := range sub.AnswerIDs {
		if rightByID[id] {
			selectedRight++
		}
	}
	return Verdict{IsRight: selectedRight == question.RightAnswerCount()}, nil
}

// gradeOpen: exact, case-sensitive match against the first canonical answer.
func (s *GradingService) gradeOpen(question *model.Question, sub Submission) (Verdict, error) {
	if len(question.Answers) == 0 {
		return Verdict{}, util.ErrMissingCanonicalAnswer
	}
	return Verdict{IsRight: sub.Text == question.Answers[0].Text}, nil
}

// gradeList: every sub-item must be paired back to the answer that owns it;
// one mismatch fails the question. An empty pairing set is vacuously right;
// behavior kept as-is (see DESIGN.md) and pinned by a test.
func (s *GradingService) gradeList(question *model.Question, sub Submission) (Verdict, error) {
	ownerByItem := make(map[uint]uint)
	for _, a := range question.Answers {
		for _, item := range a.ListItems {
			ownerByItem[item.ID] = a.ID
		}
	}

	for _, pair := range sub.Pairs {
		owner, ok := ownerByItem[pair.ItemID]
		if !ok {
			return Verdict{}, util.ErrMissingCanonicalAnswer
		}
		if owner != pair.ChosenAnswerID {
			return Verdict{IsRight: false}, nil
		}
	}
	return Verdict{IsRight: true}, nil
}
