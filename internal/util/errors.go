package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrBadCredentials     = errors.New("invalid credentials")

	ErrQuizNotFound        = errors.New("quiz not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrLevelNotFound       = errors.New("user level not found")

	// ErrStatisticNotFound: the quiz may well exist, but this user has no
	// attempt against it yet.
	ErrStatisticNotFound = errors.New("statistic not found")

	// ErrInvalidLevelChain: the new level would not extend the end of the
	// progression chain with a strictly growing threshold.
	ErrInvalidLevelChain = errors.New("level does not extend the chain")

	// ErrMismatchedQuiz: the submitted question does not belong to the quiz
	// of the targeted attempt. Rejected before grading, nothing is mutated.
	ErrMismatchedQuiz = errors.New("question does not belong to quiz")

	// ErrUnknownQuestionType: the question's type tag is none of the four
	// recognized kinds. Grading fails closed instead of silently marking the
	// answer wrong, a fall-through here would hide catalog corruption.
	ErrUnknownQuestionType = errors.New("unknown question type")

	// ErrMissingCanonicalAnswer: the catalog holds no canonical answer to
	// compare the submission against.
	ErrMissingCanonicalAnswer = errors.New("question has no canonical answer")
)
