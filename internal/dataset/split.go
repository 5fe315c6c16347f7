package dataset

import (
	"math"
	"math/rand"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// SplitExamples shuffles the examples with the fixed seed and partitions
// them into train and test slices. Repeated runs with the same seed and
// input produce the same partitions, including membership.
func SplitExamples(examples []models.TrainingExample, trainFraction float64, seed int64) (train, test []models.TrainingExample) {
	shuffled := make([]models.TrainingExample, len(examples))
	copy(shuffled, examples)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(math.Round(float64(len(shuffled)) * trainFraction))
	if cut > len(shuffled) {
		cut = len(shuffled)
	}
	return shuffled[:cut], shuffled[cut:]
}
