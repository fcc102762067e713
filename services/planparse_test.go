package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkoutPlanByDay(t *testing.T) {
	text := "第1天: 胸部训练\n俯卧撑3组\n第2天: 背部训练\n第3天: 休息"
	days := ParseWorkoutPlan(text)

	assert.Len(t, days, 3)
	assert.Equal(t, "第1天", days[0].Label)
	assert.Equal(t, []string{"胸部训练", "俯卧撑3组"}, days[0].Items)
	assert.Equal(t, []string{"休息"}, days[2].Items)
}

func TestParseWorkoutPlanEnglishLabels(t *testing.T) {
	text := "Day 1: push day\nDay 2: pull day"
	days := ParseWorkoutPlan(text)

	assert.Len(t, days, 2)
	assert.Equal(t, "Day 1", days[0].Label)
}

// 识别不到任何标签时整段文本原样返回，解析是尽力而为的
func TestParseWorkoutPlanUnstructured(t *testing.T) {
	text := "每天坚持散步半小时即可"
	days := ParseWorkoutPlan(text)

	assert.Len(t, days, 1)
	assert.Equal(t, []string{"每天坚持散步半小时即可"}, days[0].Items)
}

func TestParseWorkoutPlanEmpty(t *testing.T) {
	assert.Empty(t, ParseWorkoutPlan(""))
	assert.Empty(t, ParseWorkoutPlan("  \n  "))
}

func TestParseMealPlanByMeal(t *testing.T) {
	text := "早餐: 燕麦鸡蛋\n午餐: 鸡胸肉沙拉\n晚餐: 清蒸鱼"
	meals := ParseMealPlan(text)

	assert.Len(t, meals, 3)
	assert.Equal(t, "早餐", meals[0].Meal)
	assert.Equal(t, "燕麦鸡蛋", meals[0].Description)
}

func TestParseMealPlanContinuationLines(t *testing.T) {
	text := "早餐: 燕麦\n加一个水煮蛋\n午餐: 沙拉"
	meals := ParseMealPlan(text)

	assert.Len(t, meals, 2)
	assert.Equal(t, "燕麦 加一个水煮蛋", meals[0].Description)
}

func TestParseMealPlanUnstructured(t *testing.T) {
	meals := ParseMealPlan("少油少盐，规律三餐")
	assert.Len(t, meals, 1)
	assert.Equal(t, "少油少盐，规律三餐", meals[0].Description)
}
