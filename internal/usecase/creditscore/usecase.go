package creditscore

import (
	"fmt"
	"math/rand/v2"
)

const (
	MinScore = 300
	MaxScore = 900
)

type Score struct {
	Score    int    `json:"score"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Generator returns a random score. It does not look at any user data.
type Generator struct {
	intn func(n int) int
}

func NewGenerator() *Generator { return &Generator{intn: rand.IntN} }

// NewGeneratorWithSource is for tests; intn must return a value in [0, n).
func NewGeneratorWithSource(intn func(n int) int) *Generator {
	return &Generator{intn: intn}
}

func (g *Generator) Generate() Score {
	score := g.intn(MaxScore-MinScore+1) + MinScore
	category := Categorize(score)
	return Score{
		Score:    score,
		Category: category,
		Message:  fmt.Sprintf("Your CIBIL score is %d, which is categorized as %s.", score, category),
	}
}

func Categorize(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 700:
		return "Very Good"
	case score >= 650:
		return "Good"
	case score >= 550:
		return "Fair"
	default:
		return "Poor"
	}
}
