package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/pkg/monitoring"
	"context"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// 固定降级文案，保证任何失败路径下都有确定、非空的展示文本
const (
	fallbackNoCredential = "Configure an OpenAI API key to get an AI-generated explanation for these recommendations."
	fallbackExplanation  = "These items were selected because their difficulty parameters are close to the learner's current estimated competence (theta_d), which maintains the student in a productive challenge zone."
	fallbackMentorNoKey  = "No API Key received. Please configure your API Key and resend your question."
	fallbackMentorFailed = "The digital mentor is active, but the call failed. You can try again or check your key."
)

// ExplanationService 调用外部聊天补全服务生成自然语言解释。
// 凭证可经配置热更新，读写加锁
type ExplanationService struct {
	mu sync.RWMutex
	ai config.AIConfig
}

func NewExplanationService(ai config.AIConfig) *ExplanationService {
	return &ExplanationService{ai: ai}
}

// UpdateCredential 配置热更新回调入口
func (s *ExplanationService) UpdateCredential(ai config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ai = ai
}

func (s *ExplanationService) snapshot() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ai
}

// ExplainRecommendations 为一组推荐生成一段学术英语解释。
// 无凭证、调用失败、空响应分别降级为对应 Reason 的固定文本
func (s *ExplanationService) ExplainRecommendations(ctx context.Context, learnerID int, domain string, recs []model.Recommendation) model.ExplanationResult {
	ai := s.snapshot()
	if ai.APIKey == "" {
		monitoring.ExplanationFallbackCounter.WithLabelValues(model.FallbackMissingCredential).Inc()
		return model.ExplanationResult{
			Text:   fallbackNoCredential,
			Source: model.ExplanationSourceFallback,
			Reason: model.FallbackMissingCredential,
		}
	}

	prompt := buildExplanationPrompt(learnerID, domain, recs)
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: "You are a pedagogical explainer for adaptive learning systems.",
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		},
	}

	text, reason := s.complete(ctx, ai, messages, 180, 0)
	if reason != "" {
		monitoring.ExplanationFallbackCounter.WithLabelValues(reason).Inc()
		return model.ExplanationResult{
			Text:   fallbackExplanation,
			Source: model.ExplanationSourceFallback,
			Reason: reason,
		}
	}

	monitoring.EngineOpCounter.WithLabelValues("explain").Inc()
	return model.ExplanationResult{Text: text, Source: model.ExplanationSourceAI}
}

// MentorChat 数字导师对话：按自主性区间选择系统指令，注入所选学生的
// 模块、进度与自主性，转发最近若干轮历史
func (s *ExplanationService) MentorChat(ctx context.Context, mentee *model.Mentee, autonomyPct float64, resources []string, message string, history []model.ChatMessage) model.ExplanationResult {
	ai := s.snapshot()
	if ai.APIKey == "" {
		monitoring.ExplanationFallbackCounter.WithLabelValues(model.FallbackMissingCredential).Inc()
		return model.ExplanationResult{
			Text:   fallbackMentorNoKey,
			Source: model.ExplanationSourceFallback,
			Reason: model.FallbackMissingCredential,
		}
	}

	systemInstruction := buildMentorInstruction(mentee, autonomyPct, resources)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
	}
	// 只保留最近6条，控制上下文长度
	start := 0
	if len(history) > 6 {
		start = len(history) - 6
	}
	for _, m := range history[start:] {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	text, reason := s.complete(ctx, ai, messages, 350, 0.55)
	if reason != "" {
		monitoring.ExplanationFallbackCounter.WithLabelValues(reason).Inc()
		return model.ExplanationResult{
			Text:   fallbackMentorFailed,
			Source: model.ExplanationSourceFallback,
			Reason: reason,
		}
	}

	monitoring.EngineOpCounter.WithLabelValues("mentor_chat").Inc()
	return model.ExplanationResult{Text: text, Source: model.ExplanationSourceAI}
}

// complete 带超时的聊天补全调用，返回文本或降级原因
func (s *ExplanationService) complete(ctx context.Context, ai config.AIConfig, messages []openai.ChatCompletionMessage, maxTokens int, temperature float32) (string, string) {
	clientCfg := openai.DefaultConfig(ai.APIKey)
	if ai.BaseURL != "" {
		clientCfg.BaseURL = ai.BaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	callCtx, cancel := context.WithTimeout(ctx, ai.RequestTimeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       ai.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", model.FallbackServiceError
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", model.FallbackEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), ""
}

// buildExplanationPrompt 推荐解释的提示模板，含IRT参数表格
func buildExplanationPrompt(learnerID int, domain string, recs []model.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an educational AI tutor. A learner with id %d is studying the domain %s.\n", learnerID, domain)
	b.WriteString("You have the following recommended items, each with IRT-like parameters:\n\n")
	b.WriteString("| domain | item_id | a | b | theta_d | p_success | t_expected_min |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "| %s | %d | %.3f | %.3f | %.3f | %.3f | %.3f |\n",
			r.Domain, r.ItemID, r.Discrimination, r.Difficulty, r.ThetaD, r.PSuccess, r.ExpectedMinutes)
	}
	b.WriteString("\nExplain in one paragraph, clear, in academic English, why these items were recommended, referring to:\n")
	b.WriteString("- the match between difficulty b and the estimated theta_d,\n")
	b.WriteString("- keeping the student in an optimal challenge zone,\n")
	b.WriteString("- and prioritizing weaker domains.\n")
	return b.String()
}

func buildMentorInstruction(mentee *model.Mentee, autonomyPct float64, resources []string) string {
	var base string
	switch {
	case autonomyPct < 25:
		base = "You are a highly empathetic digital mentor for a learner with very low autonomy. " +
			"Explain with simple examples, concrete steps, and explicit verification. " +
			"Use academic Spanish and third-person tone."
	case autonomyPct < 50:
		base = "You are a digital mentor for a learner with low autonomy. " +
			"Propose micro-activities and reinforcement. " +
			"Use academic Spanish and third-person tone."
	case autonomyPct < 75:
		base = "You are a digital mentor for a learner with medium autonomy. " +
			"Incorporate metacognition and application activities. " +
			"Use academic Spanish and third-person tone."
	default:
		base = "You are a digital mentor for a learner with high autonomy. " +
			"Pose open-ended challenges, advanced readings, and deepening routes. " +
			"Use academic Spanish and third-person tone."
	}

	moduleTxt := "unidentified module"
	progressTxt := "unknown"
	autonomyTxt := fmt.Sprintf("%.1f%%", autonomyPct)
	if mentee != nil {
		moduleTxt = mentee.Module
		progressTxt = fmt.Sprintf("%.1f%%", mentee.Progress*100)
		autonomyTxt = fmt.Sprintf("%.1f%%", mentee.Autonomy*100)
	}

	resourcesTxt := "no suggested resources"
	if len(resources) > 0 {
		resourcesTxt = strings.Join(resources, ", ")
	}

	return base +
		fmt.Sprintf(" The current learner works on: %s. ", moduleTxt) +
		fmt.Sprintf("Approximate progress: %s; observed autonomy: %s. ", progressTxt, autonomyTxt) +
		fmt.Sprintf("Suggested resources by the adaptive system are: %s. ", resourcesTxt) +
		"Integrate these resources in your explanation or mention them as next steps."
}
