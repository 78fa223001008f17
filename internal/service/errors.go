package service

import "errors"

var (
	// ErrQuizComplete is returned when an answer is submitted to a finished quiz.
	ErrQuizComplete = errors.New("quiz is already complete")

	// ErrQuizActive is returned when a quiz is finalized before its last question.
	ErrQuizActive = errors.New("quiz is not complete yet")

	// ErrInvalidCount rejects a non-positive requested vocable count.
	ErrInvalidCount = errors.New("vocable count must be positive")

	// ErrInvalidVocable rejects a vocable with an empty german or english side.
	ErrInvalidVocable = errors.New("vocable needs both german and english text")

	ErrVocableNotFound = errors.New("vocable not found")
)
