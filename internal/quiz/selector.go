package quiz

import (
	"math/rand"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// DefaultQuotas is how many questions each level contributes to a session.
var DefaultQuotas = map[models.Level]int{
	models.LevelBeginner: 5,
	models.LevelMid:      7,
}

// SelectQuestions builds one randomized session from the bank: for each
// level in priority order, a uniformly shuffled quota-sized draw of that
// level's questions, concatenated block by block. There is no cross-level
// shuffle, so level boundaries stay contiguous. A level with fewer
// questions than its quota contributes everything it has.
func SelectQuestions(bank *Bank, quotas map[models.Level]int) []models.Question {
	var selected []models.Question
	for _, level := range models.LevelOrder {
		quota, ok := quotas[level]
		if !ok || quota <= 0 {
			continue
		}
		pool := bank.QuestionsForLevel(level)
		shuffled := make([]models.Question, len(pool))
		copy(shuffled, pool)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if quota > len(shuffled) {
			quota = len(shuffled)
		}
		selected = append(selected, shuffled[:quota]...)
	}
	return selected
}
