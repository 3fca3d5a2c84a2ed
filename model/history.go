package model

// historySize is how many past generation hashes are kept, enough to spot
// still-lifes and oscillators of period two and three
const historySize = 5

// History remembers recent generation hashes to detect a stuck world
type History struct {
	hashes []string
}

// Push records the hash of a generation, dropping the oldest beyond historySize
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded hashes
func (h *History) Len() int { return len(h.hashes) }

// IsStagnant reports whether hash repeats one of the last three recorded generations
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
