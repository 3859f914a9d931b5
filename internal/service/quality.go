package service

import (
	"regexp"
	"strings"

	"channel_importer/internal/domain"
)

var noiseRE = regexp.MustCompile(`(?i)^[\s\[\(]*(music|applause|laughter|inaudible|silence|♪+)[\s\]\)]*$`)

// WordCountQuality flags a transcript as quality when it has enough segments
// and words and is not dominated by non-speech cues such as "[Music]".
type WordCountQuality struct {
	MinSegments   int
	MinWords      int
	MaxNoiseRatio float64
}

func DefaultQualityPolicy() WordCountQuality {
	return WordCountQuality{
		MinSegments:   10,
		MinWords:      100,
		MaxNoiseRatio: 0.3,
	}
}

func (q WordCountQuality) IsQuality(segments []domain.Segment) bool {
	if len(segments) < q.MinSegments || len(segments) == 0 {
		return false
	}

	words := 0
	noise := 0
	for _, s := range segments {
		if noiseRE.MatchString(s.Text) {
			noise++
			continue
		}
		words += len(strings.Fields(s.Text))
	}

	if float64(noise)/float64(len(segments)) > q.MaxNoiseRatio {
		return false
	}
	return words >= q.MinWords
}
