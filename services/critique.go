package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"AuraGo/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// CritiqueService 图像点评服务：穿搭点评与形体指导
type CritiqueService struct {
	client *LLMClient
}

func NewCritiqueService(client *LLMClient) *CritiqueService {
	return &CritiqueService{client: client}
}

// OutfitCritique 穿搭点评结果
type OutfitCritique struct {
	Comments    []string `json:"comments"`
	Suggestions []string `json:"suggestions"`
	Rating      int      `json:"rating"`
	Fallback    bool     `json:"-"`
}

// BodyCritique 形体指导结果
type BodyCritique struct {
	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	WorkoutPlan   string `json:"workoutPlan"`
	NutritionPlan string `json:"nutritionPlan"`
	Motivation    string `json:"motivation"`
	Fallback      bool   `json:"-"`
}

const outfitPrompt = `你是一位专业而友善的穿搭顾问。请点评用户上传的穿搭照片，要求：
1.指出2-4个亮点
2.给出2-4条具体的改进建议
3.给出1-10的整体评分
4.语气积极，不要打击用户
5.禁用markdown格式

最后将结果结构化处理，用[[JSON_START]]和[[JSON_END]]包裹。

字段说明：
- comments: 亮点数组
- suggestions: 建议数组
- rating: 整体评分（1-10的整数）

完整结构示例：
[[JSON_START]]
{
	"comments": ["配色和谐", "剪裁合身"],
	"suggestions": ["可以尝试更亮的鞋子"],
	"rating": 8
}
[[JSON_END]]`

const bodyPrompt = `你是一位专业的健身与营养教练。请根据用户的正面照、侧面照和训练偏好，给出形体指导，要求：
1.先肯定优势，再指出待改进处
2.给出一周的训练计划，按"第N天:"逐行列出
3.给出一日的饮食建议，按"早餐:/午餐:/晚餐:"逐行列出
4.最后给一句激励的话
5.语气专业且鼓励，禁用markdown格式

最后将结果结构化处理，用[[JSON_START]]和[[JSON_END]]包裹。

字段说明：
- strengths: 优势描述
- weaknesses: 待改进描述
- workoutPlan: 训练计划文本（按天分行）
- nutritionPlan: 饮食建议文本（按餐分行）
- motivation: 激励语

完整结构示例：
[[JSON_START]]
{
	"strengths": "肩背线条不错",
	"weaknesses": "核心力量偏弱",
	"workoutPlan": "第1天: 胸部训练\n第2天: 背部训练",
	"nutritionPlan": "早餐: 燕麦鸡蛋\n午餐: 鸡胸肉沙拉\n晚餐: 清蒸鱼",
	"motivation": "坚持下去，身体不会辜负你"
}
[[JSON_END]]`

// 解析失败时的兜底结果，保证前端始终拿到可渲染的内容
var outfitFallback = OutfitCritique{
	Comments:    []string{"整体搭配看起来很用心", "颜色选择有自己的风格"},
	Suggestions: []string{"可以尝试加一件亮色配饰", "注意鞋子与整体风格的呼应"},
	Rating:      7,
	Fallback:    true,
}

var bodyFallback = BodyCritique{
	Strengths:     "你已经迈出了关注身体的第一步，这本身就是优势",
	Weaknesses:    "暂时无法给出针对性的分析，建议稍后重试",
	WorkoutPlan:   "第1天: 30分钟快走\n第2天: 全身拉伸\n第3天: 自重深蹲3组\n第4天: 休息\n第5天: 30分钟慢跑\n第6天: 核心训练\n第7天: 休息",
	NutritionPlan: "早餐: 高蛋白早餐，如鸡蛋和燕麦\n午餐: 均衡主食与蔬菜\n晚餐: 清淡少油，睡前3小时完成",
	Motivation:    "每一次训练都算数，继续加油",
	Fallback:      true,
}

// CritiqueOutfit 穿搭点评：单图 + 固定指令 → JSON补全。
// 响应解析或校验失败时返回兜底结果而不是错误（纯粹的体验兜底）。
func (s *CritiqueService) CritiqueOutfit(ctx context.Context, imageURL string) *OutfitCritique {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(outfitPrompt)},
		},
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart("请点评这套穿搭"),
				llms.ImageURLPart(imageURL),
			},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("穿搭点评生成失败", "error", err)
		result := outfitFallback
		return &result
	}

	var critique OutfitCritique
	if err := parseWrappedJSON(firstChoice(response), &critique); err != nil {
		config.Logger.Warnw("穿搭点评解析失败，使用兜底结果", "error", err)
		result := outfitFallback
		return &result
	}

	// 校验必填字段
	if len(critique.Comments) == 0 || len(critique.Suggestions) == 0 ||
		critique.Rating < 1 || critique.Rating > 10 {
		config.Logger.Warnw("穿搭点评字段校验失败，使用兜底结果")
		result := outfitFallback
		return &result
	}

	return &critique
}

// CritiqueBody 形体指导：两张图 + 偏好文本 → JSON补全，失败兜底
func (s *CritiqueService) CritiqueBody(ctx context.Context, frontURL, sideURL, preferences string) *BodyCritique {
	userText := "请根据照片给出形体指导"
	if preferences != "" {
		userText = fmt.Sprintf("%s。我的训练偏好：%s", userText, preferences)
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(bodyPrompt)},
		},
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userText),
				llms.ImageURLPart(frontURL),
				llms.ImageURLPart(sideURL),
			},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("形体指导生成失败", "error", err)
		result := bodyFallback
		return &result
	}

	var critique BodyCritique
	if err := parseWrappedJSON(firstChoice(response), &critique); err != nil {
		config.Logger.Warnw("形体指导解析失败，使用兜底结果", "error", err)
		result := bodyFallback
		return &result
	}

	if critique.WorkoutPlan == "" || critique.NutritionPlan == "" {
		config.Logger.Warnw("形体指导字段校验失败，使用兜底结果")
		result := bodyFallback
		return &result
	}

	return &critique
}

// parseWrappedJSON 从模型输出中提取[[JSON_START]]/[[JSON_END]]包裹的JSON；
// 未包裹时退而求其次，尝试解析整段文本。
func parseWrappedJSON(content string, v interface{}) error {
	if content == "" {
		return fmt.Errorf("empty model response")
	}

	start := strings.Index(content, "[[JSON_START]]")
	end := strings.Index(content, "[[JSON_END]]")
	if start != -1 && end != -1 && end > start {
		content = content[start+len("[[JSON_START]]") : end]
	}

	return json.Unmarshal([]byte(strings.TrimSpace(content)), v)
}

func firstChoice(response *llms.ContentResponse) string {
	if response == nil || len(response.Choices) == 0 {
		return ""
	}
	return response.Choices[0].Content
}
