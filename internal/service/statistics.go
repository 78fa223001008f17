package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/idueppe/vokabel-bot/internal/models"
	"go.uber.org/zap"
)

type StatsRI interface {
	Vocables(ctx context.Context) ([]models.Vocable, error)
	Scores(ctx context.Context) (map[int]models.ScoreRecord, error)
}

type StatsS struct {
	repo StatsRI
	log  *zap.Logger
}

func NewStatsService(repo StatsRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
	}
}

func (s *StatsS) Progress(ctx context.Context) (models.Statistics, error) {
	vocables, err := s.repo.Vocables(ctx)
	if err != nil {
		s.log.Error("failed to load vocables", zap.Error(err))
		return models.Statistics{}, err
	}

	scores, err := s.repo.Scores(ctx)
	if err != nil {
		s.log.Error("failed to load scores", zap.Error(err))
		return models.Statistics{}, err
	}

	return CalculateStatistics(vocables, scores), nil
}

// CalculateStatistics partitions the vocabulary into the six fixed score
// bands. An empty vocabulary yields zero percentages everywhere instead of
// dividing by zero.
func CalculateStatistics(vocables []models.Vocable, scores map[int]models.ScoreRecord) models.Statistics {
	counts := make(map[string]int, len(models.BandNames))
	for _, vocable := range vocables {
		counts[bandFor(models.DefaultedScore(scores, vocable.ID).Score)]++
	}

	total := len(vocables)
	stats := models.Statistics{
		Total: total,
		Bands: make(map[string]models.Band, len(models.BandNames)),
	}

	for _, name := range models.BandNames {
		count := counts[name]
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(count) / float64(total) * 100))
		}
		stats.Bands[name] = models.Band{Count: count, Percentage: percentage}
	}

	return stats
}

func bandFor(score int) string {
	switch {
	case score == 0:
		return models.BandUnpracticed
	case score <= 9:
		return models.BandBeginner
	case score <= 19:
		return models.BandLearning
	case score <= 29:
		return models.BandAdvanced
	case score <= 39:
		return models.BandGood
	default:
		return models.BandMaster
	}
}

var bandLabels = map[string]string{
	models.BandUnpracticed: "Noch nie geübt",
	models.BandBeginner:    "Anfänger (1-9)",
	models.BandLearning:    "Lernphase (10-19)",
	models.BandAdvanced:    "Fortgeschritten (20-29)",
	models.BandGood:        "Gut (30-39)",
	models.BandMaster:      "Meister (40+)",
}

// FormatStatistics renders the band breakdown for the bot.
func FormatStatistics(stats models.Statistics) string {
	var sb strings.Builder

	sb.WriteString("📊 *Fortschritt*\n\n")
	sb.WriteString("Vokabeln insgesamt: **")
	sb.WriteString(strconv.Itoa(stats.Total))
	sb.WriteString("**\n\n")

	for _, name := range models.BandNames {
		band := stats.Bands[name]
		sb.WriteString(bandLabels[name])
		sb.WriteString(": **")
		sb.WriteString(strconv.Itoa(band.Count))
		sb.WriteString("** (")
		sb.WriteString(strconv.Itoa(band.Percentage))
		sb.WriteString("%)\n")
	}

	return sb.String()
}
