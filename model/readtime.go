package model

import "strings"

const wordsPerMinute = 200

// EstimateReadTime returns the estimated reading time in minutes for the
// given body text, at 200 words per minute, rounded up. Words are counted
// by splitting on whitespace.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
