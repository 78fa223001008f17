package service

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type RepositoryI interface {
	VocableRI
	QuizRI
	StatsRI
}

type Service struct {
	*VocableS
	*QuizS
	*StatsS
}

func InitServices(repo RepositoryI, log *zap.Logger) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &Service{
		VocableS: NewVocableService(repo, log),
		QuizS:    NewQuizService(repo, rng, log),
		StatsS:   NewStatsService(repo, log),
	}
}
