package model

// PriorityPolicy 周计划的优先策略
type PriorityPolicy string

const (
	PriorityWeak     PriorityPolicy = "weak"
	PriorityStrong   PriorityPolicy = "strong"
	PriorityBalanced PriorityPolicy = "balanced"
)

// ParsePriority 未知取值回退为 balanced（输入宽容，不报错）
func ParsePriority(s string) PriorityPolicy {
	switch PriorityPolicy(s) {
	case PriorityWeak, PriorityStrong:
		return PriorityPolicy(s)
	default:
		return PriorityBalanced
	}
}

var PlanDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// PlanCell 某领域在某天分配的学习小时数
type PlanCell struct {
	Domain string  `json:"domain"`
	Day    string  `json:"day"`
	Hours  float64 `json:"hours"`
}

// WeeklyPlan 派生结果，总小时数在浮点误差内等于目标
type WeeklyPlan struct {
	LearnerID   int            `json:"learnerId"`
	Priority    PriorityPolicy `json:"priority"`
	GoalHours   float64        `json:"goalHours"`
	DomainHours []DomainHours  `json:"domainHours"`
	Cells       []PlanCell     `json:"cells"`
}

type DomainHours struct {
	Domain string  `json:"domain"`
	Weight float64 `json:"weight"`
	Hours  float64 `json:"hours"`
}

// TotalHours 所有单元格小时数之和
func (p *WeeklyPlan) TotalHours() float64 {
	var total float64
	for _, c := range p.Cells {
		total += c.Hours
	}
	return total
}
