package lyrics

import (
	"sort"
	"time"
)

// single timed lyric line
type Caption struct {
	At   time.Duration
	Text string
}

// captions of one lyric layer, ascending by At
type Track []Caption

// NewTrack copies captions into a Track sorted by timestamp. Captions that
// share a timestamp keep their input order.
func NewTrack(captions []Caption) Track {
	track := make(Track, len(captions))
	copy(track, captions)
	sort.SliceStable(track, func(i, j int) bool {
		return track[i].At < track[j].At
	})
	return track
}

// At returns the text of the last caption starting at or before t, or ""
// when t precedes the first caption.
func (tr Track) At(t time.Duration) string {
	current := ""
	for _, c := range tr {
		if c.At > t {
			break
		}
		current = c.Text
	}
	return current
}

// Last returns the latest timestamp in the track, 0 when empty.
func (tr Track) Last() time.Duration {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].At
}
