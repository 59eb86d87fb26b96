package engine

import (
	"regexp"
	"strings"
)

// SyllableEstimator counts syllables in a single lowercase word. The engine
// treats syllabification as pluggable: callers with a dictionary-backed
// estimator inject it via Options, everyone else gets EstimateSyllables.
type SyllableEstimator func(word string) int

var wordToken = regexp.MustCompile(`[A-Za-z']+`)

// EstimateSyllables is the built-in fallback estimator: counts vowel groups,
// discounts a trailing silent 'e', and never returns less than 1 for a
// non-empty word.
func EstimateSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// tokenize splits span text into lowercase word tokens, mirroring how the
// transcript metrics treat punctuation-attached words.
func tokenize(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}
