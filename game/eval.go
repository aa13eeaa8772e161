package game

// EvaluateAdvancement scores how far each side's pieces have travelled from
// their home row, between -1 and 1 from the current player's perspective
func EvaluateAdvancement(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if o := gs.Ended(gs.Player()); o.IsOver() {
		return float64(o[gs.Player()])
	}
	advancement := gs.calculateAdvancement()
	current, opponent := gs.Player(), 1-gs.Player()
	return normalize(advancement[current], advancement[opponent])
}

// EvaluateOpenLanes considers pieces with an unobstructed path to the goal
// row, in addition to advancement, to produce a score between -1 and 1
func EvaluateOpenLanes(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if o := gs.Ended(gs.Player()); o.IsOver() {
		return float64(o[gs.Player()])
	}
	advancement := gs.calculateAdvancement()
	lanes := gs.calculateOpenLanes()
	current, opponent := gs.Player(), 1-gs.Player()

	advancementScore := normalize(advancement[current], advancement[opponent])
	laneScore := normalize(lanes[current], lanes[opponent])
	return (advancementScore + laneScore) / 2
}

// calculateAdvancement sums the rows each player's pieces have left behind.
func (gs *GameState) calculateAdvancement() [NumPlayers]float64 {
	var advancement [NumPlayers]float64
	for r := range gs.cells {
		for _, t := range gs.cells[r] {
			if t == Empty {
				continue
			}
			if p := owner(t); p == 0 {
				advancement[p] += float64(Rows - 1 - r)
			} else {
				advancement[p] += float64(r)
			}
		}
	}
	return advancement
}

// calculateOpenLanes counts, per player, the pieces that could reach the
// goal row in one unrestricted move if they were the one bound to move.
func (gs *GameState) calculateOpenLanes() [NumPlayers]float64 {
	var lanes [NumPlayers]float64
	for p := 0; p < NumPlayers; p++ {
		goal := 0
		if p == 1 {
			goal = Rows - 1
		}
		for c := Brown; c <= Orange; c++ {
			row, col := gs.Locate(p, c)
			if row < 0 {
				continue
			}
			if gs.hasOpenLane(p, row, col, goal) {
				lanes[p]++
			}
		}
	}
	return lanes
}

func (gs *GameState) hasOpenLane(player, row, col, goal int) bool {
	for d := DiagonalLeft; d <= DiagonalRight; d++ {
		for distance := 1; distance <= MaxDistance; distance++ {
			r, c := step(row, col, player, d, distance)
			if !onBoard(r, c) || gs.cells[r][c] != Empty {
				break
			}
			if r == goal {
				return true
			}
		}
	}
	return false
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
