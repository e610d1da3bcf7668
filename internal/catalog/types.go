package catalog

import "fmt"

// Difficulty is the level a lesson is pitched at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns all difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Label returns a human-readable name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// ParseDifficulty converts a flag or seed value into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid difficulty %q: must be beginner, intermediate or advanced", s)
	}
	return d, nil
}

// Lesson is a single unit of static lesson content.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Content     string     `json:"content"`
	CodeExample string     `json:"codeExample,omitempty"`
}

// HasCodeExample reports whether the lesson ships a code sample.
func (l Lesson) HasCodeExample() bool {
	return l.CodeExample != ""
}

// Category groups lessons for display. Lesson order is display order.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Lessons     []Lesson `json:"lessons"`
}
