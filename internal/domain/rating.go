package domain

// RatingGrades is the 13-point letter-grade scale, worst to best.
// The index of a grade is its numeric score (F=0 ... A+=12).
var RatingGrades = []string{
	"F",
	"D-", "D", "D+",
	"C-", "C", "C+",
	"B-", "B", "B+",
	"A-", "A", "A+",
}

var ratingScores = func() map[string]int {
	m := make(map[string]int, len(RatingGrades))
	for i, g := range RatingGrades {
		m[g] = i
	}
	return m
}()

// RatingScore maps a letter grade to its numeric score on the 0-12 scale.
// The second return is false for unknown grades.
func RatingScore(grade string) (int, bool) {
	score, ok := ratingScores[grade]
	return score, ok
}

// ValidRating reports whether grade is one of the 13 defined grades.
func ValidRating(grade string) bool {
	_, ok := ratingScores[grade]
	return ok
}
