package model

// AssessmentQuestion 从推荐条目生成的练习题
type AssessmentQuestion struct {
	Index      int     `json:"index"`
	ItemID     int     `json:"itemId"`
	Domain     string  `json:"domain"`
	Prompt     string  `json:"prompt"`
	Difficulty float64 `json:"b"`
}

// AssessmentResult 提交后的评分结果。Answered 为 0 表示没有有效作答
type AssessmentResult struct {
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}
