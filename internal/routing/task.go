// Package routing decides which provider serves a task. It returns
// decisions only; callers execute them and report outcomes to the ledger.
package routing

import (
	"strings"

	"creator-backend/internal/llm"
)

// TaskType tags what kind of generation a task asks for.
type TaskType string

const (
	TaskCreative    TaskType = "creative"
	TaskAnalysis    TaskType = "analysis"
	TaskSocial      TaskType = "social"
	TaskVideoScript TaskType = "video-script"
	TaskArticle     TaskType = "article"
	TaskAdCopy      TaskType = "ad-copy"
	TaskComplex     TaskType = "complex"
	TaskCoding      TaskType = "coding"
	TaskUnspecified TaskType = ""
)

// ParseTaskType normalizes a raw task type. Unknown values map to
// TaskUnspecified rather than erroring; routing treats them as ambiguous.
func ParseTaskType(raw string) TaskType {
	switch TaskType(strings.ToLower(strings.TrimSpace(raw))) {
	case TaskCreative:
		return TaskCreative
	case TaskAnalysis:
		return TaskAnalysis
	case TaskSocial:
		return TaskSocial
	case TaskVideoScript:
		return TaskVideoScript
	case TaskArticle:
		return TaskArticle
	case TaskAdCopy:
		return TaskAdCopy
	case TaskComplex:
		return TaskComplex
	case TaskCoding:
		return TaskCoding
	default:
		return TaskUnspecified
	}
}

// Task is one unit of generation work. Created per call, immutable, never
// persisted.
type Task struct {
	Prompt      string
	Type        TaskType
	Override    llm.Provider // explicit provider choice; empty means none
	MaxCostUSD  float64      // cost ceiling; zero means unset
	MaxTokens   int
	Temperature float64
}
