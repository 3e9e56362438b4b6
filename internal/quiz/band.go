package quiz

// Band is the tier a final score falls into.
type Band int

const (
	BandLow Band = iota // below 60%
	BandMid             // 60% up to 80%
	BandTop             // 80% and above
)

// BandFor returns the band for score out of total. Lower bounds are
// inclusive. Integer arithmetic keeps 3/5 and 4/5 exactly on the boundary.
func BandFor(score, total int) Band {
	if total <= 0 {
		return BandLow
	}
	switch {
	case score*10 >= total*8:
		return BandTop
	case score*10 >= total*6:
		return BandMid
	default:
		return BandLow
	}
}

func (b Band) String() string {
	switch b {
	case BandTop:
		return "Top"
	case BandMid:
		return "Mid"
	default:
		return "Low"
	}
}

// Icon is the emoji shown on the completion screen.
func (b Band) Icon() string {
	switch b {
	case BandTop:
		return "🏆"
	case BandMid:
		return "🎉"
	default:
		return "📖"
	}
}

// Message is the encouragement shown on the completion screen.
func (b Band) Message() string {
	switch b {
	case BandTop:
		return "Excellent! You have great knowledge of the Bible!"
	case BandMid:
		return "Good job! Keep studying God's Word!"
	default:
		return "Keep reading and studying the Bible to grow in knowledge!"
	}
}
