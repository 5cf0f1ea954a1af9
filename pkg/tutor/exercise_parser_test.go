package tutor

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseExercises(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantCount     int
		wantQuestion  string
		wantAnswer    string
		wantType      string
		wantDifficult string
	}{
		{
			name: "single block",
			raw: `=== EXERCISE 1 ===
Question: What is photosynthesis?
Answer: The process plants use to convert light into energy.`,
			wantCount:     1,
			wantQuestion:  "What is photosynthesis?",
			wantAnswer:    "The process plants use to convert light into energy.",
			wantType:      "Exercise 1",
			wantDifficult: "Basic",
		},
		{
			name: "three blocks with difficulty progression",
			raw: `=== EXERCISE 1 ===
Question: Q1?
Answer: A1
=== EXERCISE 2 ===
Question: Q2?
Answer: A2
=== EXERCISE 3 ===
Question: Q3?
Answer: A3`,
			wantCount:     3,
			wantQuestion:  "Q1?",
			wantAnswer:    "A1",
			wantType:      "Exercise 1",
			wantDifficult: "Basic",
		},
		{
			name: "legacy separator fallback",
			raw: `Exercise 1:
Question: What is gravity?
Answer: A force of attraction between masses.`,
			wantCount:     1,
			wantQuestion:  "What is gravity?",
			wantAnswer:    "A force of attraction between masses.",
			wantType:      "Exercise 1",
			wantDifficult: "Basic",
		},
		{
			name: "multiline question is collapsed",
			raw: `=== EXERCISE 1 ===
Question: What is
the capital
of France?
Answer: Paris`,
			wantCount:     1,
			wantQuestion:  "What is the capital of France?",
			wantAnswer:    "Paris",
			wantType:      "Exercise 1",
			wantDifficult: "Basic",
		},
		{
			name:      "no separators",
			raw:       "Question: orphan?\nAnswer: yes",
			wantCount: 0,
		},
		{
			name:      "empty input",
			raw:       "",
			wantCount: 0,
		},
		{
			name: "block without answer is skipped",
			raw: `=== EXERCISE 1 ===
Question: incomplete?
=== EXERCISE 2 ===
Question: complete?
Answer: yes`,
			wantCount:     1,
			wantQuestion:  "complete?",
			wantAnswer:    "yes",
			wantType:      "Exercise 1",
			wantDifficult: "Basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExercises(tt.raw)
			if len(got) != tt.wantCount {
				t.Fatalf("ParseExercises() returned %d exercises, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			first := got[0]
			if first.Question != tt.wantQuestion {
				t.Errorf("Question = %q, want %q", first.Question, tt.wantQuestion)
			}
			if first.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", first.Answer, tt.wantAnswer)
			}
			if first.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", first.Type, tt.wantType)
			}
			if first.Difficulty != tt.wantDifficult {
				t.Errorf("Difficulty = %q, want %q", first.Difficulty, tt.wantDifficult)
			}
		})
	}
}

func TestParseExercisesDifficultyBands(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "=== EXERCISE %d ===\nQuestion: Q?\nAnswer: A\n", i)
	}

	got := ParseExercises(b.String())
	if len(got) != 5 {
		t.Fatalf("expected cap of 5 exercises, got %d", len(got))
	}

	wantDifficulties := []string{"Basic", "Basic", "Medium", "Advanced", "Advanced"}
	for i, want := range wantDifficulties {
		if got[i].Difficulty != want {
			t.Errorf("exercise %d difficulty = %q, want %q", i+1, got[i].Difficulty, want)
		}
	}
}
