package seeder

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/gurtle/gurtle/internal/domain/integrity"
	"github.com/gurtle/gurtle/internal/domain/model"
)

// Score range for generated submissions. Lower is better, so a spread around
// zero exercises negative scores too.
const (
	minScore = -50
	maxScore = 500
)

var namePrefixes = []string{
	"swift", "sleepy", "mossy", "snappy", "ancient", "tidal", "sunny", "grumpy",
}

// generate produces count submissions with valid hashes under token. Names
// carry a UUID suffix so runs are distinguishable in the stored data.
func generate(count int, token string) []model.SubmittedEntry {
	subs := make([]model.SubmittedEntry, count)
	for i := range subs {
		name := fmt.Sprintf("%s-turtle-%s",
			namePrefixes[rand.Intn(len(namePrefixes))],
			uuid.NewString()[:8],
		)
		score := minScore + rand.Intn(maxScore-minScore+1)
		subs[i] = model.SubmittedEntry{
			Name:  name,
			Score: score,
			Hash:  integrity.Digest(name, score, token),
		}
	}
	return subs
}
