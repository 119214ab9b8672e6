// Package export renders the collected profiles into an xlsx workbook for
// the admin download.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/violetta-bot/violetta/internal/models"
)

const sheetName = "Responses"

var headers = []string{
	"Chat ID",
	"Username",
	"ФИО",
	"Возраст",
	"Пол",
	"Принимает препараты",
	"Какие препараты",
	"Беременность",
	"Тест 1 Результат",
	"Тест 1 Описание",
	"Тест 1 Ответы",
	"Тест 2 Результат",
	"Тест 2 Описание",
	"Тест 2 Ответы",
	"Тест 3 Тревога",
	"Тест 3 Депрессия",
	"Тест 3 Описание",
	"Тест 3 Ответы (Тревога)",
	"Тест 3 Ответы (Депрессия)",
	"Тест 4 Результат",
	"Тест 4 Описание",
	"Тест 4 Ответы",
	"Рекомендация",
	"Дата создания",
	"Дата обновления",
}

// Service builds export workbooks.
type Service struct{}

// NewService creates an export service.
func NewService() *Service {
	return &Service{}
}

// Export renders the profiles into an xlsx workbook and returns its bytes.
func (s *Service) Export(profiles []*models.UserProfile) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Debug("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	for col, title := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", title, err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to address header range: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, p := range profiles {
		row := i + 2
		for col, value := range profileRow(p) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	slog.Info("Export workbook built", "profiles", len(profiles))
	return buf.Bytes(), nil
}

// profileRow flattens one profile into the header column order.
func profileRow(p *models.UserProfile) []interface{} {
	return []interface{}{
		p.ChatID,
		p.Username,
		p.FullName,
		p.Age,
		genderLabel(p.Gender),
		yesNoLabel(p.TakingMeds),
		p.MedsDetails,
		yesNoLabel(p.Pregnant),
		p.Test1Score,
		description(p.Test1Answers, &models.Test1Result{}),
		p.Test1Raw,
		p.Test2Score,
		description(p.Test2Answers, &models.Test2Result{}),
		p.Test2Raw,
		p.Test3AnxietyScore,
		p.Test3DepressionScore,
		description(p.Test3Answers, &models.Test3Result{}),
		p.Test3AnxietyRaw,
		p.Test3DepressionRaw,
		p.Test4Score,
		description(p.Test4Answers, &models.Test4Result{}),
		p.Test4Raw,
		p.Recommendation,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	}
}

// description extracts the human-readable text from a stored result blob.
// Malformed or absent blobs yield an empty cell rather than failing the
// whole export.
func description(blob string, result interface{}) string {
	ok, err := models.FromJSON(blob, result)
	if err != nil {
		slog.Debug("Skipping malformed result blob", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	switch r := result.(type) {
	case *models.Test1Result:
		return r.Description
	case *models.Test2Result:
		return r.Description
	case *models.Test3Result:
		return r.Description
	case *models.Test4Result:
		return r.Description
	}
	return ""
}

func genderLabel(gender string) string {
	switch gender {
	case "male":
		return "Мужской"
	case "female":
		return "Женский"
	}
	return ""
}

func yesNoLabel(answer string) string {
	switch answer {
	case models.AnswerYes:
		return "Да"
	case models.AnswerNo:
		return "Нет"
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
