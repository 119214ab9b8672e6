// Package recommend generates personalized relaxation technique
// recommendations from completed test results using the OpenAI API.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/violetta-bot/violetta/internal/models"
)

// Generation parameters for the recommendation call.
const (
	DefaultModel       = openai.ChatModelGPT4oMini
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

const systemPrompt = "ВЫ - ВЕДУЩИЙ ЭКСПЕРТ-ПСИХОЛОГ С ГЛУБОКОЙ СПЕЦИАЛИЗАЦИЕЙ В ОБЛАСТИ ПСИХОФИЗИОЛОГИЧЕСКИХ И КОГНИТИВНЫХ РЕЛАКСАЦИОННЫХ ТЕХНИК. ВАШ ПОДХОД БАЗИРУЕТСЯ НА НАУЧНОМ АНАЛИЗЕ ПСИХОЛОГИЧЕСКИХ ДАННЫХ, И ВЫ ПРЕДЛАГАЕТЕ ТОЧНЫЕ, ПЕРСОНАЛИЗИРОВАННЫЕ РЕШЕНИЯ ДЛЯ СНИЖЕНИЯ СТРЕССА И ПОВЫШЕНИЯ БЛАГОПОЛУЧИЯ."

// ClientInterface defines the LLM operations used by the recommendation
// service, allowing mocking in tests.
type ClientInterface interface {
	GenerateWithMessages(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error)
}

// Opts holds configuration options for the OpenAI client.
type Opts struct {
	APIKey string
	Model  string
}

// Option configures client creation.
type Option func(*Opts)

// WithAPIKey overrides the OPENAI_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *Opts) { o.APIKey = key }
}

// WithModel overrides the default chat model.
func WithModel(model string) Option {
	return func(o *Opts) { o.Model = model }
}

// Client wraps the OpenAI chat completion API.
type Client struct {
	api   openai.Client
	model string
}

// NewClient initializes an OpenAI client. The API key comes from options or
// the OPENAI_API_KEY environment variable.
func NewClient(opts ...Option) (*Client, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	slog.Debug("Recommend client created", "model", model)
	return &Client{api: openai.NewClient(option.WithAPIKey(apiKey)), model: model}, nil
}

// GenerateWithMessages performs a chat completion with the given messages.
func (c *Client) GenerateWithMessages(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(DefaultTemperature),
		MaxTokens:   openai.Int(DefaultMaxTokens),
	})
	if err != nil {
		slog.Error("Chat completion failed", "error", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", models.ErrEmptyRecommendation
	}
	return resp.Choices[0].Message.Content, nil
}

// Service assembles test results into a prompt and produces the final
// recommendation text.
type Service struct {
	client ClientInterface
}

// NewService creates a recommendation service backed by the given client.
func NewService(client ClientInterface) *Service {
	return &Service{client: client}
}

// noData stands in for tests whose results are absent.
const noData = "Нет данных"

// FormatResults renders the four results as the prompt's test summary block.
// Absent results render as a fixed placeholder instead of being skipped.
func FormatResults(results *models.AllResults) string {
	test1 := noData
	if results.Test1 != nil {
		test1 = "Акцентуации: " + results.Test1.Description
	}
	test2 := noData
	if results.Test2 != nil {
		test2 = "Тип восприятия: " + results.Test2.Description
	}
	test3 := noData
	if results.Test3 != nil {
		test3 = "Тревога и депрессия: " + results.Test3.Description
	}
	test4 := noData
	if results.Test4 != nil {
		test4 = "Симптоматика (SCL-90-R): " + results.Test4.Description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "test1: %s\n", test1)
	fmt.Fprintf(&b, "test2: %s\n", test2)
	fmt.Fprintf(&b, "test3: %s\n", test3)
	fmt.Fprintf(&b, "test4: %s", test4)
	return b.String()
}

func userPrompt(results *models.AllResults) string {
	return fmt.Sprintf(`На основе приведённых ниже результатов психологических тестов, пожалуйста, выберите и опишите наиболее подходящую технику релаксации. РЕЗУЛЬТАТЫ ТЕСТОВ:

%s

АНАЛИЗ РЕЗУЛЬТАТОВ: Определите основные проблемы, исходя из данных тестов.
2. ВЫБОР ТЕХНИКИ: Подберите наиболее подходящую технику релаксации с учётом выявленных проблем.
3. ПОДРОБНОЕ ОПИСАНИЕ: Опишите технику пошагово, включая инструкции по выполнению.
4. ОБОСНОВАНИЕ ВЫБОРА: Объясните, почему именно эта техника подходит для человека с такими результатами тестов и каких улучшений можно ожидать.

ТРЕБОВАНИЯ К ОТВЕТУ:
- Чёткая структура: анализ → техника → пошаговое описание → обоснование.
- Простой и понятный язык, исключающий медицинские термины, где это возможно.
- Инструкции должны быть практическими и доступными для выполнения в домашних условиях.
- Ответ должен учитывать как психоэмоциональные, так и физические аспекты благополучия.

ФОРМАТ ОТВЕТА (ЗАПРЕЩЕНО ИСПОЛЬЗОВАТЬ ЗВЁЗДОЧКИ):
1. Анализ результатов:
 - [Выделите ключевые проблемы].
2. Рекомендуемая техника:
 - Название техники.
3. Пошаговое описание:
 - Шаг 1: ...
 - Шаг 2: ...
 - и т.д.
4. Обоснование выбора:
 - [Поясните, почему техника эффективна и каких результатов можно ожидать].
ФОРМАТИРУЙТЕ ТЕКСТ ЧИСТО, БЕЗ МАРКЕРОВ, ЗВЁЗДОЧЕК И ЛИШНИХ СИМВОЛОВ.`, FormatResults(results))
}

// Recommendation generates the user-facing recommendation message.
func (s *Service) Recommendation(ctx context.Context, results *models.AllResults) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(userPrompt(results)),
	}
	slog.Debug("Requesting recommendation")
	text, err := s.client.GenerateWithMessages(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate recommendation: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", models.ErrEmptyRecommendation
	}
	return "🧘‍♂️ Персональная техника релаксации:\n\n" + text, nil
}
