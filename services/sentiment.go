package services

import (
	"strings"
)

// 本地词表情感分类器。反思保存路径不依赖任何外部API，
// 分类必须是确定性的纯函数。

var positiveWords = map[string]bool{
	"great": true, "good": true, "happy": true, "joy": true, "love": true,
	"amazing": true, "wonderful": true, "excited": true, "grateful": true,
	"proud": true, "calm": true, "peaceful": true, "energized": true,
	"accomplished": true, "awesome": true, "fantastic": true, "better": true,
	"hopeful": true, "relaxed": true, "fun": true,
}

var negativeWords = map[string]bool{
	"bad": true, "sad": true, "angry": true, "tired": true, "anxious": true,
	"stressed": true, "worried": true, "terrible": true, "awful": true,
	"frustrated": true, "lonely": true, "depressed": true, "exhausted": true,
	"overwhelmed": true, "hate": true, "fear": true, "upset": true,
	"hopeless": true, "worse": true, "pain": true,
}

// SentimentResult 情感分类结果
type SentimentResult struct {
	Sentiment  string
	Confidence float64
}

// ClassifySentiment 基于正负词命中数给文本打情感标签。
// 无命中时返回 neutral，置信度固定0.5；
// 有命中时置信度由命中词密度决定，下限0.5上限0.95。
func ClassifySentiment(text string) SentimentResult {
	words := tokenize(text)

	positive := 0
	negative := 0
	for _, w := range words {
		if positiveWords[w] {
			positive++
		}
		if negativeWords[w] {
			negative++
		}
	}

	matched := positive + negative
	if matched == 0 || len(words) == 0 {
		return SentimentResult{Sentiment: "neutral", Confidence: 0.5}
	}

	density := float64(matched) / float64(len(words))
	confidence := 0.5 + density*0.45
	if confidence > 0.95 {
		confidence = 0.95
	}

	switch {
	case positive > negative:
		return SentimentResult{Sentiment: "positive", Confidence: confidence}
	case negative > positive:
		return SentimentResult{Sentiment: "negative", Confidence: confidence}
	default:
		// 正负持平视为中性，置信度保留密度信息
		return SentimentResult{Sentiment: "neutral", Confidence: confidence}
	}
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	return fields
}
