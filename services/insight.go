package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// InsightService 洞察报告服务
type InsightService struct {
	client *LLMClient
}

func NewInsightService(client *LLMClient) *InsightService {
	return &InsightService{client: client}
}

// insightPayload 模型输出的结构化报告
type insightPayload struct {
	Summary         string   `json:"summary"`
	Motivation      string   `json:"motivation"`
	Recommendations []string `json:"recommendations"`
}

const insightPrompt = `你是一位温暖而理性的心理健康助手，专注于情绪复盘。

请根据用户提供的反思记录和统计数据，生成一份洞察报告，要求：
1.日报告以"今天"开头，周报告以"本周"开头，月报告以"本月"开头
2.用第二人称称呼用户
3.先总结情绪走势，再给出一段激励的话
4.给出2-4条具体可执行的建议
5.不要编造记录中没有的内容
6.禁用markdown格式
7.总长度不超过500字

最后将结果结构化处理，用[[JSON_START]]和[[JSON_END]]包裹。

字段说明：
- summary: 情绪总结
- motivation: 激励语
- recommendations: 建议数组

完整结构示例：
[[JSON_START]]
{
	"summary": "本周你的情绪整体向好",
	"motivation": "继续保持记录的习惯",
	"recommendations": ["睡前写三件感恩的事"]
}
[[JSON_END]]`

// GenerateReport 读取窗口内的反思记录，本地计算统计量，再交给模型生成文案并落库。
// 窗口内没有记录时直接返回错误，不发起厂商调用。
func (s *InsightService) GenerateReport(ctx context.Context, uid, period string, now time.Time) (*models.InsightReport, error) {
	window := utils.WindowForPeriod(period, now)

	var reflections []models.Reflection
	if err := config.DB.Where("user_id = ? AND created_at BETWEEN ? AND ?",
		uid, window.Start, window.End).
		Order("created_at asc").
		Find(&reflections).Error; err != nil {
		return nil, fmt.Errorf("查询反思记录失败: %v", err)
	}

	if len(reflections) == 0 {
		return nil, ErrNoReflections
	}

	// 本地统计：平均心情分 + 情感直方图
	var moodSum int
	histogram := map[string]int{}
	for _, r := range reflections {
		moodSum += r.MoodScore
		histogram[r.Sentiment]++
	}
	averageMood := float64(moodSum) / float64(len(reflections))

	// 上一次的报告摘要作为上下文，缓存7天
	summaryKey := fmt.Sprintf("insight:summary:%s:%s", uid, period)
	previousSummary, err := config.RedisClient.Get(ctx, summaryKey).Result()
	if err != nil {
		previousSummary = ""
	}

	payload, err := s.generateProse(ctx, period, reflections, averageMood, histogram, previousSummary)
	if err != nil {
		return nil, err
	}

	recommendations, _ := json.Marshal(payload.Recommendations)
	report := models.InsightReport{
		ID:              utils.GenerateID(),
		UserID:          uid,
		Period:          period,
		WindowStart:     window.Start,
		WindowEnd:       window.End,
		Summary:         payload.Summary,
		Motivation:      payload.Motivation,
		Recommendations: string(recommendations),
		ReflectionCount: len(reflections),
		AverageMood:     averageMood,
		CreatedAt:       time.Now().UTC(),
	}

	if err := config.DB.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("保存洞察报告失败: %v", err)
	}

	if err := config.RedisClient.Set(ctx, summaryKey, payload.Summary, 7*24*time.Hour).Err(); err != nil {
		config.Logger.Warnw("缓存报告摘要失败", "error", err, "uid", uid)
	}

	return &report, nil
}

func (s *InsightService) generateProse(ctx context.Context, period string, reflections []models.Reflection, averageMood float64, histogram map[string]int, previousSummary string) (*insightPayload, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(insightPrompt)},
		},
	}

	if previousSummary != "" {
		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("以下是上一次报告的摘要，可作为对比参考：\n%s", previousSummary))},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role: schema.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(
			"报告周期：%s\n平均心情分：%.1f\n情感分布：积极%d条，中性%d条，消极%d条\n\n反思记录：\n%s",
			period, averageMood,
			histogram[models.SentimentPositive],
			histogram[models.SentimentNeutral],
			histogram[models.SentimentNegative],
			formatReflections(reflections),
		))},
	})

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("生成洞察报告失败: %v", err)
	}

	var payload insightPayload
	if err := parseWrappedJSON(firstChoice(response), &payload); err != nil {
		return nil, fmt.Errorf("洞察报告解析失败: %v", err)
	}
	if payload.Summary == "" {
		return nil, fmt.Errorf("洞察报告内容为空")
	}

	return &payload, nil
}

// 辅助函数：格式化反思记录
func formatReflections(reflections []models.Reflection) string {
	var sb strings.Builder
	for _, r := range reflections {
		sb.WriteString(fmt.Sprintf("- [%s] 心情%d分 (%s): %s\n",
			r.CreatedAt.Format("01-02 15:04"), r.MoodScore, r.Sentiment, r.Content))
	}
	return sb.String()
}

// ErrNoReflections 窗口内无反思记录
var ErrNoReflections = fmt.Errorf("no reflections in window")
