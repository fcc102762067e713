package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySentimentPositiveOnly(t *testing.T) {
	result := ClassifySentiment("great amazing wonderful")
	assert.Equal(t, "positive", result.Sentiment)
	assert.Greater(t, result.Confidence, 0.5)
}

func TestClassifySentimentNegativeOnly(t *testing.T) {
	result := ClassifySentiment("sad tired awful")
	assert.Equal(t, "negative", result.Sentiment)
	assert.Greater(t, result.Confidence, 0.5)
}

func TestClassifySentimentNoMatches(t *testing.T) {
	result := ClassifySentiment("the sky is blue today")
	assert.Equal(t, "neutral", result.Sentiment)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestClassifySentimentEmptyText(t *testing.T) {
	result := ClassifySentiment("")
	assert.Equal(t, "neutral", result.Sentiment)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestClassifySentimentTie(t *testing.T) {
	result := ClassifySentiment("happy but sad")
	assert.Equal(t, "neutral", result.Sentiment)
}

// 反思保存路径依赖的端到端行为："Today was great" 必须判为积极
func TestClassifySentimentTodayWasGreat(t *testing.T) {
	result := ClassifySentiment("Today was great")
	assert.Equal(t, "positive", result.Sentiment)
}

func TestClassifySentimentCaseInsensitive(t *testing.T) {
	result := ClassifySentiment("GREAT day, LOVE it!")
	assert.Equal(t, "positive", result.Sentiment)
}

func TestClassifySentimentConfidenceCapped(t *testing.T) {
	result := ClassifySentiment("great good happy joy love")
	assert.LessOrEqual(t, result.Confidence, 0.95)
}
