package lyrics

import "time"

// MinMainCaptions is the smallest main track played as loaded; anything
// shorter is replaced by the built-in main lyrics.
const MinMainCaptions = 8

func MainFallback() Track {
	return NewTrack([]Caption{
		{At: 0 * time.Second, Text: "You know, you know where you are with"},
		{At: 5 * time.Second, Text: "You know where you are with"},
		{At: 10 * time.Second, Text: "Floor collapses, floating"},
		{At: 15 * time.Second, Text: "Bouncing back"},
		{At: 20 * time.Second, Text: "And one day, I am gonna grow wings"},
		{At: 25 * time.Second, Text: "A chemical reaction (you know where you are)"},
		{At: 30 * time.Second, Text: "Hysterical and useless (you know where you are)"},
		{At: 35 * time.Second, Text: "Hysterical and (you know where you are)"},
	})
}

func SupportFallback() Track {
	return NewTrack([]Caption{
		{At: 0 * time.Second, Text: "She's runnin' out the door"},
		{At: 10 * time.Second, Text: "She's runnin' out"},
		{At: 16 * time.Second, Text: "She run, run, run, run"},
		{At: 32 * time.Second, Text: "Run..."},
	})
}

// MainOrFallback returns t, or the built-in main lyrics when t holds fewer
// than MinMainCaptions captions. used reports the substitution.
func MainOrFallback(t Track) (track Track, used bool) {
	if len(t) < MinMainCaptions {
		return MainFallback(), true
	}
	return t, false
}

// SupportOrFallback returns t, or the built-in support lyrics when t is
// empty.
func SupportOrFallback(t Track) (track Track, used bool) {
	if len(t) == 0 {
		return SupportFallback(), true
	}
	return t, false
}
