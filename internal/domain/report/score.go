package report

// The three categorical answer labels the ESQ scoring scale recognizes.
const (
	answerNotTrue    = "Ikke sandt"
	answerPartlyTrue = "Delvist sandt"
	answerTrue       = "Sandt"
)

// AnswerScore returns the score contribution for a raw categorical answer.
// Only the three exact scale labels are scorable; ok is false for anything
// else. Inverted questions score with reversed polarity {0, -1, -2}.
func AnswerScore(label string, inverted bool) (score int, ok bool) {
	var base int
	switch label {
	case answerNotTrue:
		base = 0
	case answerPartlyTrue:
		base = 1
	case answerTrue:
		base = 2
	default:
		return 0, false
	}
	if inverted {
		return -base, true
	}
	return base, true
}

// scoreTally accumulates answer scores across one submission.
type scoreTally struct {
	total int
	count int
}

func (t *scoreTally) add(label string, inverted bool) {
	score, ok := AnswerScore(label, inverted)
	if !ok {
		return
	}
	t.total += score
	t.count++
}

// average returns the mean score rounded to two decimals. ok is false when
// no scorable answers were seen.
func (t scoreTally) average() (float64, bool) {
	if t.count == 0 {
		return 0, false
	}
	return roundTwoDecimals(float64(t.total) / float64(t.count)), true
}
