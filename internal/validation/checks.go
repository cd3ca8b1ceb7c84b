package validation

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

var toxicPatterns = []string{
	"kill yourself",
	"deserves to die",
	"hate speech",
	"go to hell",
	"subhuman",
	"vermin",
	"చచ్చిపో",
	"దరిద్రుడ",
	"చంపేస్తా",
	"చంపుతా",
}

var sensitiveGroups = map[string][]string{
	"political": {
		"election rigging", "vote tampering", "party defection",
		"government scam", "political conspiracy",
	},
	"health": {
		"miracle cure", "guaranteed cure", "cures cancer",
		"no side effects", "doctors hate",
	},
	"legal": {
		"court case", "arrest warrant", "police complaint",
		"defamation", "fir filed",
	},
	"rumor": {
		"allegedly", "sources say", "unconfirmed", "viral claim",
		"rumour", "rumor",
	},
}

// sensitiveGroupOrder fixes iteration order so results stay deterministic.
var sensitiveGroupOrder = []string{"political", "health", "legal", "rumor"}

var clickbaitPhrases = []string{
	"you won't believe",
	"shocking",
	"mind blowing",
	"gone viral",
	"must see",
	"సంచలనం",
	"షాకింగ్",
	"వైరల్",
}

// TeluguPurity returns the fraction of Telugu-script runes over all
// non-whitespace runes. Empty input counts as zero purity.
func TeluguPurity(text string) float64 {
	var telugu, total int

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Telugu, r) {
			telugu++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(telugu) / float64(total)
}

func scanToxicity(text string) []string {
	lower := strings.ToLower(text)

	var matches []string
	for _, p := range toxicPatterns {
		if strings.Contains(lower, p) {
			matches = append(matches, p)
		}
	}
	return matches
}

func scanSensitive(text string) []string {
	lower := strings.ToLower(text)

	var categories []string
	for _, group := range sensitiveGroupOrder {
		for _, p := range sensitiveGroups[group] {
			if strings.Contains(lower, p) {
				categories = append(categories, group)
				break
			}
		}
	}
	return categories
}

// clickbaitScore accumulates fixed increments per signal.
func clickbaitScore(title string, weights ClickbaitWeights) int {
	score := 0
	lower := strings.ToLower(title)

	for _, p := range clickbaitPhrases {
		if strings.Contains(lower, p) {
			score += weights.Phrase
		}
	}

	if capsRatio(title) > 0.5 {
		score += weights.Capitals
	}

	if strings.Contains(title, "!!") || strings.Contains(title, "??") {
		score += weights.Punctuation
	}

	trimmed := strings.TrimSpace(title)
	if trimmed != "" && unicode.IsDigit([]rune(trimmed)[0]) {
		score += weights.LeadingNumeral
	}

	return score
}

// capsRatio is the fraction of upper-case letters among cased letters.
func capsRatio(text string) float64 {
	var upper, letters int

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) || unicode.IsLower(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}

	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// ContentHash returns the SHA-256 hex digest of the whitespace-normalized,
// case-folded body. Equal normalized bodies always hash identically.
func ContentHash(body string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(body)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
