package grading

// celebrationThreshold is the lowest average that earns a celebration.
const celebrationThreshold = 6.0

var greetingBands = []struct {
	min  float64
	text string
}{
	{9.5, "Unbelievable! You are a Legend!"},
	{9.0, "Outstanding! You're in the elite club!"},
	{8.5, "Incredible! Keep shining bright!"},
	{8.0, "Excellent Work! You've done amazing!"},
	{7.5, "Great Achievement! Keep up the momentum!"},
	{7.0, "Very Good! You're on the right track!"},
	{6.5, "Good Job! Keep pushing for more!"},
	{6.0, "Well Done! Every step counts!"},
}

// Greeting picks the message shown next to a computed average.
func Greeting(avg Average) string {
	for _, b := range greetingBands {
		if float64(avg) >= b.min {
			return b.text
		}
	}
	return "Keep pushing yourself hard!"
}

// Celebrate reports whether the client should play the celebration.
func Celebrate(avg Average) bool {
	return float64(avg) >= celebrationThreshold
}
