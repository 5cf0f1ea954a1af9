package tutor

import (
	"fmt"
	"regexp"
	"strings"
)

const maxExercises = 5

var (
	blockSeparator  = regexp.MustCompile(`=== EXERCISE \d+ ===`)
	legacySeparator = regexp.MustCompile(`Exercise \d+:`)
	questionPattern = regexp.MustCompile(`(?s)Question:\s*(.*?)(?:Answer:|$)`)
	answerPattern   = regexp.MustCompile(`(?s)Answer:\s*(.*)$`)
	collapseSpace   = regexp.MustCompile(`\s+`)
	collapseLines   = regexp.MustCompile(`\n+`)
)

// ParseExercises extracts ordered question/answer pairs from raw model
// output. The prompt enforces "=== EXERCISE n ===" separators; the older
// "Exercise n:" format is accepted as a fallback. Returns at most 5 pairs.
func ParseExercises(raw string) []Exercise {
	exercises := parseBlocks(blockSeparator.Split(raw, -1))
	if len(exercises) == 0 {
		exercises = parseBlocks(legacySeparator.Split(raw, -1))
	}
	if len(exercises) > maxExercises {
		exercises = exercises[:maxExercises]
	}
	return exercises
}

func parseBlocks(blocks []string) []Exercise {
	var exercises []Exercise
	// The first split element precedes the first separator.
	if len(blocks) > 0 {
		blocks = blocks[1:]
	}
	for _, block := range blocks {
		q := questionPattern.FindStringSubmatch(block)
		a := answerPattern.FindStringSubmatch(block)
		if q == nil || a == nil {
			continue
		}

		question := strings.TrimSpace(collapseSpace.ReplaceAllString(q[1], " "))
		answer := strings.TrimSpace(collapseLines.ReplaceAllString(a[1], "\n"))
		if question == "" || answer == "" {
			continue
		}

		n := len(exercises) + 1
		exercises = append(exercises, Exercise{
			Question:   question,
			Answer:     answer,
			Type:       exerciseType(n),
			Difficulty: exerciseDifficulty(n),
		})
	}
	return exercises
}

func exerciseType(n int) string {
	return fmt.Sprintf("Exercise %d", n)
}

func exerciseDifficulty(n int) string {
	switch {
	case n <= 2:
		return "Basic"
	case n <= 3:
		return "Medium"
	default:
		return "Advanced"
	}
}
