package terminal

import (
	"fmt"
	"strings"
)

const scoreboardWidth = 10

// Scoreboard renders the progress bar shown between questions
func Scoreboard(progress int) string {
	progress = min(max(progress, 0), 100)
	filled := (progress*scoreboardWidth + 50) / 100
	bar := strings.Repeat("#", filled) + strings.Repeat(".", scoreboardWidth-filled)
	return fmt.Sprintf("SCOREBOARD [%s] %d%%", bar, progress)
}
