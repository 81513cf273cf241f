package quiz

// Topic groups questions of the bank.
type Topic string

const (
	TopicCandles    Topic = "candles"
	TopicIndicators Topic = "indicators"
	TopicChan       Topic = "chan"
	TopicDiscipline Topic = "discipline"
)

// Question is a multiple-choice question with a single correct option.
type Question struct {
	ID          int
	Topic       Topic
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.Correct
}

// Result is the outcome of a finished quiz.
type Result struct {
	Total   int
	Correct int
}
