package scoring

// Score returns the points earned for a single round
// An exact bid earns 10 plus 2 per trick; a miss costs 2 per trick off
func Score(bid, tricksWon int) int {
	if bid == tricksWon {
		return 10 + 2*tricksWon
	}

	diff := bid - tricksWon
	if diff < 0 {
		diff = -diff
	}

	return -2 * diff
}
