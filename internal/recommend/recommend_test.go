package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openai/openai-go"

	"github.com/violetta-bot/violetta/internal/models"
)

// mockClient records the messages it was called with.
type mockClient struct {
	response string
	err      error
	messages []openai.ChatCompletionMessageParamUnion
}

func (m *mockClient) GenerateWithMessages(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	m.messages = messages
	return m.response, m.err
}

func allResults() *models.AllResults {
	return &models.AllResults{
		Test1: &models.Test1Result{Description: "гипертимный тип"},
		Test2: &models.Test2Result{Description: "визуал"},
		Test3: &models.Test3Result{Anxiety: 4, Depression: 3, Description: "норма"},
		Test4: &models.Test4Result{Score: 0.4, Description: "в пределах нормы"},
	}
}

func TestRecommendationWrapsResponse(t *testing.T) {
	mock := &mockClient{response: "Дыхательная гимнастика."}
	svc := NewService(mock)

	got, err := svc.Recommendation(context.Background(), allResults())
	if err != nil {
		t.Fatalf("Recommendation failed: %v", err)
	}
	if !strings.HasPrefix(got, "🧘‍♂️ Персональная техника релаксации:\n\n") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "Дыхательная гимнастика.") {
		t.Errorf("missing generated text: %q", got)
	}
	if len(mock.messages) != 2 {
		t.Fatalf("message count = %d, want system + user", len(mock.messages))
	}
}

func TestRecommendationPropagatesError(t *testing.T) {
	mock := &mockClient{err: errors.New("rate limited")}
	svc := NewService(mock)

	if _, err := svc.Recommendation(context.Background(), allResults()); err == nil {
		t.Error("Recommendation with failing client succeeded, want error")
	}
}

func TestRecommendationEmptyResponse(t *testing.T) {
	mock := &mockClient{response: "   "}
	svc := NewService(mock)

	_, err := svc.Recommendation(context.Background(), allResults())
	if !errors.Is(err, models.ErrEmptyRecommendation) {
		t.Errorf("error = %v, want ErrEmptyRecommendation", err)
	}
}

func TestFormatResultsPlaceholders(t *testing.T) {
	got := FormatResults(&models.AllResults{
		Test2: &models.Test2Result{Description: "аудиал"},
	})
	if !strings.Contains(got, "test1: Нет данных") {
		t.Errorf("missing test1 placeholder: %q", got)
	}
	if !strings.Contains(got, "test2: Тип восприятия: аудиал") {
		t.Errorf("missing test2 line: %q", got)
	}
	if !strings.Contains(got, "test3: Нет данных") || !strings.Contains(got, "test4: Нет данных") {
		t.Errorf("missing placeholders: %q", got)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewClient(); err == nil {
		t.Error("NewClient without key succeeded, want error")
	}
	if _, err := NewClient(WithAPIKey("sk-test")); err != nil {
		t.Errorf("NewClient with explicit key failed: %v", err)
	}
}
