package model

// 解释调用结果来源
const (
	ExplanationSourceAI       = "ai"
	ExplanationSourceFallback = "fallback"
)

// 降级原因，调用方可据此区分"无凭证/服务故障/空响应"
const (
	FallbackMissingCredential = "missing_credential"
	FallbackServiceError      = "service_error"
	FallbackEmptyResponse     = "empty_response"
)

// ExplanationResult 解释调用的显式结果类型。任何失败都降级为固定
// 可读文本，Text 恒非空，绝不向上抛出致命错误
type ExplanationResult struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Reason string `json:"reason,omitempty"`
}

// ChatMessage 导师对话的单条消息
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
