package engine

import (
	"fmt"
	"time"
)

// RewardTable holds the base points for clearing 1, 2, 3 or 4 rows at once.
var RewardTable = [4]int{40, 100, 300, 1200}

// LinesPerLevel is how many cleared lines each level requires.
const LinesPerLevel = 10

// InitialDropInterval is the time between descent steps at level 1.
const InitialDropInterval = time.Second

// LineReward is the score for clearing rows at once while at level.
func LineReward(rows, level int) int {
	if rows == 0 {
		return 0
	}
	if rows < 0 || rows > len(RewardTable) {
		panic(fmt.Sprintf("engine: %d rows cleared in one lock", rows))
	}
	return RewardTable[rows-1] * level
}

// DropInterval is the time between descent steps once level has been reached.
func DropInterval(level int) time.Duration {
	if level <= 1 {
		return InitialDropInterval
	}
	return time.Second/time.Duration(level) + 200*time.Millisecond
}
