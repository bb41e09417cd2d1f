// FILE: ecosnap/src/internal/classify/classify.go
package classify

import (
	"math/rand/v2"
	"sync"

	"ecosnap/src/internal/core"
)

// Opaque handle to an uploaded image. Content is never inspected.
type Image struct {
	Name string
	Data []byte
}

// Classifier assigns a waste label to an image.
// Implementations return one label from core.Labels().
type Classifier interface {
	Predict(img Image) string
}

// Random is a stand-in classifier that picks a label uniformly at random.
// Output is intentionally non-reproducible.
type Random struct {
	mu     sync.Mutex
	rng    *rand.Rand
	labels []string
}

// NewRandom creates a random classifier. A nil source uses a freshly seeded PCG.
func NewRandom(src rand.Source) *Random {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Random{
		rng:    rand.New(src),
		labels: core.Labels(),
	}
}

// Predict ignores the image and returns a uniformly chosen label
func (r *Random) Predict(_ Image) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.labels[r.rng.IntN(len(r.labels))]
}
