package clipvault_test

import (
	"strings"
	"testing"

	"github.com/ewozniak/clipvault"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_RanksByFrequency(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		strings.Repeat("kubernetes ", 5),
		strings.Repeat("scheduler ", 3),
		strings.Repeat("deployment ", 2),
		"once",
	}, " ")

	got := clipvault.ExtractKeywords(text, 3, clipvault.DefaultStopwords())

	assert.Equal(t, []string{"kubernetes", "scheduler", "deployment"}, got)
}

func TestExtractKeywords_SkipsStopwordsAndShortWords(t *testing.T) {
	t.Parallel()

	text := "the the the and and database database database migration migration"

	got := clipvault.ExtractKeywords(text, 5, clipvault.DefaultStopwords())

	assert.Equal(t, []string{"database", "migration"}, got)
}

func TestExtractKeywords_DeterministicTieBreak(t *testing.T) {
	t.Parallel()

	text := "zebra apple zebra apple"

	got := clipvault.ExtractKeywords(text, 2, clipvault.DefaultStopwords())

	assert.Equal(t, []string{"apple", "zebra"}, got)
}

func TestExtractKeywords_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, clipvault.ExtractKeywords("", 5, clipvault.DefaultStopwords()))
	assert.Nil(t, clipvault.ExtractKeywords("some text", 0, clipvault.DefaultStopwords()))
}
