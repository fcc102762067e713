package services

import (
	"regexp"
	"strings"
)

// 把教练输出的自由文本拆成按天/按餐的展示结构。
// 这是有损的启发式解析，结果只用于展示，从不落库，
// 解析不出来时原样返回整段文本作为单条内容。

// PlanDay 训练计划中的一天
type PlanDay struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// MealEntry 饮食建议中的一餐
type MealEntry struct {
	Meal        string `json:"meal"`
	Description string `json:"description"`
}

var dayLabelPattern = regexp.MustCompile(`^(第\s*[一二三四五六七日天0-9]+\s*天|Day\s*[0-9]+)\s*[:：]\s*(.*)$`)
var mealLabelPattern = regexp.MustCompile(`^(早餐|午餐|晚餐|加餐|Breakfast|Lunch|Dinner|Snack)\s*[:：]\s*(.*)$`)

// ParseWorkoutPlan 按"第N天:"/"Day N:"行拆分训练计划
func ParseWorkoutPlan(text string) []PlanDay {
	var days []PlanDay
	var current *PlanDay

	for _, line := range splitLines(text) {
		if m := dayLabelPattern.FindStringSubmatch(line); m != nil {
			days = append(days, PlanDay{Label: m[1]})
			current = &days[len(days)-1]
			if m[2] != "" {
				current.Items = append(current.Items, m[2])
			}
			continue
		}
		if current != nil {
			current.Items = append(current.Items, line)
		}
	}

	// 识别不到任何天标签时，整段文本作为一条返回
	if len(days) == 0 && strings.TrimSpace(text) != "" {
		return []PlanDay{{Label: "计划", Items: splitLines(text)}}
	}
	return days
}

// ParseMealPlan 按"早餐:/午餐:/晚餐:"行拆分饮食建议
func ParseMealPlan(text string) []MealEntry {
	var meals []MealEntry

	for _, line := range splitLines(text) {
		if m := mealLabelPattern.FindStringSubmatch(line); m != nil {
			meals = append(meals, MealEntry{Meal: m[1], Description: m[2]})
			continue
		}
		// 无标签的行追加到上一餐的描述里
		if len(meals) > 0 {
			last := &meals[len(meals)-1]
			if last.Description != "" {
				last.Description += " "
			}
			last.Description += line
		}
	}

	if len(meals) == 0 && strings.TrimSpace(text) != "" {
		return []MealEntry{{Meal: "建议", Description: strings.TrimSpace(text)}}
	}
	return meals
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
