package model

// Mentee 数字导师面板的被辅导学生，progress/autonomy 取值 [0,1]，
// 由定时模拟单写者更新
type Mentee struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Module     string  `json:"module"`
	Progress   float64 `json:"progress"`
	Autonomy   float64 `json:"autonomy"`
	Difficulty string  `json:"difficulty"`
}

// AutonomyEvent 自主性更新事件，追加进有界日志
type AutonomyEvent struct {
	ID          string  `json:"id"`
	MenteeName  string  `json:"name"`
	Timestamp   string  `json:"timestamp"`
	AutonomyPct float64 `json:"autonomy"`
}

// MenteeAverages 群体均值（百分比）
type MenteeAverages struct {
	AutonomyPct float64 `json:"autonomyPct"`
	ProgressPct float64 `json:"progressPct"`
	Count       int     `json:"count"`
}
