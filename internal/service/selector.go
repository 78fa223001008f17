package service

import (
	"math/rand"
	"sort"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
)

type candidate struct {
	vocable       models.Vocable
	score         int
	practiced     bool
	lastPracticed time.Time
	tieBreak      float64
}

// SelectByPriority picks up to count vocables ordered by need to practice:
// lowest score first, never-practiced before any practiced vocable, older
// practice dates before newer ones, exact ties broken randomly so repeated
// selections are not deterministic. The scores map is not modified.
func SelectByPriority(vocables []models.Vocable, scores map[int]models.ScoreRecord, count int, rng *rand.Rand) []models.Vocable {
	if count <= 0 || len(vocables) == 0 {
		return []models.Vocable{}
	}

	candidates := make([]candidate, 0, len(vocables))
	for _, v := range vocables {
		record := models.DefaultedScore(scores, v.ID)
		c := candidate{
			vocable:  v,
			score:    record.Score,
			tieBreak: rng.Float64(),
		}
		if record.LastPracticed != nil {
			c.practiced = true
			c.lastPracticed = *record.LastPracticed
		}
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score < b.score
		}
		if a.practiced != b.practiced {
			return !a.practiced
		}
		if a.practiced && !a.lastPracticed.Equal(b.lastPracticed) {
			return a.lastPracticed.Before(b.lastPracticed)
		}
		return a.tieBreak < b.tieBreak
	})

	if count > len(candidates) {
		count = len(candidates)
	}

	selected := make([]models.Vocable, count)
	for i := range selected {
		selected[i] = candidates[i].vocable
	}

	return selected
}
