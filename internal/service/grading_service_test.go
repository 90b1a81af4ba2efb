package service

import (
	"testing"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(id uint, right bool) model.Answer {
	return model.Answer{BaseModel: model.BaseModel{ID: id}, IsRight: right}
}

func TestGradeSingle(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{
		Type:    model.QuestionSingle,
		Answers: []model.Answer{answer(1, false), answer(2, true), answer(3, false)},
	}

	tests := []struct {
		name    string
		sub     Submission
		isRight bool
	}{
		{"correct option", Submission{AnswerIDs: []uint{2}}, true},
		{"wrong option", Submission{AnswerIDs: []uint{1}}, false},
		{"unknown option id", Submission{AnswerIDs: []uint{99}}, false},
		{"empty submission", Submission{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := grader.Grade(q, tt.sub)
			require.NoError(t, err)
			assert.Equal(t, tt.isRight, v.IsRight)
		})
	}
}

func TestGradeSingleWithoutCanonicalAnswer(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{Type: model.QuestionSingle}

	_, err := grader.Grade(q, Submission{AnswerIDs: []uint{1}})
	assert.ErrorIs(t, err, util.ErrMissingCanonicalAnswer)
}

func TestGradeMulti(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{
		Type:    model.QuestionMulti,
		Answers: []model.Answer{answer(1, true), answer(2, true), answer(3, false), answer(4, false)},
	}

	tests := []struct {
		name    string
		sub     Submission
		isRight bool
	}{
		{"exactly the correct set", Submission{AnswerIDs: []uint{1, 2}}, true},
		{"missing one correct", Submission{AnswerIDs: []uint{1}}, false},
		{"only wrong options", Submission{AnswerIDs: []uint{3, 4}}, false},
		{"empty submission", Submission{}, false},
		// Extra wrong picks alongside the full correct set still grade as
		// right. Pins the current cardinality-based behavior.
		{"correct set plus a wrong pick", Submission{AnswerIDs: []uint{1, 2, 3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := grader.Grade(q, tt.sub)
			require.NoError(t, err)
			assert.Equal(t, tt.isRight, v.IsRight)
		})
	}
}

func TestGradeOpen(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{
		Type:    model.QuestionOpen,
		Answers: []model.Answer{{BaseModel: model.BaseModel{ID: 1}, Text: "Moscow"}},
	}

	tests := []struct {
		name    string
		text    string
		isRight bool
	}{
		{"exact match", "Moscow", true},
		{"case differs", "moscow", false},
		{"wrong text", "Paris", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := grader.Grade(q, Submission{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.isRight, v.IsRight)
		})
	}
}

func TestGradeOpenWithoutCanonicalAnswer(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{Type: model.QuestionOpen}

	_, err := grader.Grade(q, Submission{Text: "anything"})
	assert.ErrorIs(t, err, util.ErrMissingCanonicalAnswer)
}

func TestGradeList(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{
		Type: model.QuestionList,
		Answers: []model.Answer{
			{
				BaseModel: model.BaseModel{ID: 1},
				ListItems: []model.AnswerListItem{
					{BaseModel: model.BaseModel{ID: 10}},
					{BaseModel: model.BaseModel{ID: 11}},
				},
			},
			{
				BaseModel: model.BaseModel{ID: 2},
				ListItems: []model.AnswerListItem{
					{BaseModel: model.BaseModel{ID: 12}},
				},
			},
		},
	}

	tests := []struct {
		name    string
		pairs   []ListPair
		isRight bool
	}{
		{
			"all pairs correct",
			[]ListPair{{ItemID: 10, ChosenAnswerID: 1}, {ItemID: 11, ChosenAnswerID: 1}, {ItemID: 12, ChosenAnswerID: 2}},
			true,
		},
		{
			"one mismatch fails",
			[]ListPair{{ItemID: 10, ChosenAnswerID: 1}, {ItemID: 12, ChosenAnswerID: 1}},
			false,
		},
		// An empty pairing set is vacuously right. Pins the current
		// behavior.
		{"empty pairing set", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := grader.Grade(q, Submission{Pairs: tt.pairs})
			require.NoError(t, err)
			assert.Equal(t, tt.isRight, v.IsRight)
		})
	}
}

func TestGradeListUnknownItem(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{Type: model.QuestionList}

	_, err := grader.Grade(q, Submission{Pairs: []ListPair{{ItemID: 99, ChosenAnswerID: 1}}})
	assert.ErrorIs(t, err, util.ErrMissingCanonicalAnswer)
}

func TestGradeUnknownQuestionType(t *testing.T) {
	grader := NewGradingService()
	q := &model.Question{Type: "XXX"}

	_, err := grader.Grade(q, Submission{})
	assert.ErrorIs(t, err, util.ErrUnknownQuestionType)
}
