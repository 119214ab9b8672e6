package bot

import (
	"errors"
	"testing"

	"github.com/violetta-bot/violetta/internal/models"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"start_test", Action{Kind: ActionStartIntake}},
		{"start_test_1", Action{Kind: ActionStartTest, Test: models.Test1}},
		{"start_test_2", Action{Kind: ActionStartTest, Test: models.Test2}},
		{"start_test_3_anxiety", Action{Kind: ActionStartTest3Part, Test: models.Test3, Part: models.PartAnxiety}},
		{"start_test_3_depression", Action{Kind: ActionStartTest3Part, Test: models.Test3, Part: models.PartDepression}},
		{"start_test_4", Action{Kind: ActionStartTest, Test: models.Test4}},
		{"male", Action{Kind: ActionGender, Value: "male"}},
		{"female", Action{Kind: ActionGender, Value: "female"}},
		{"meds_yes", Action{Kind: ActionMeds, Value: models.AnswerYes}},
		{"meds_no", Action{Kind: ActionMeds, Value: models.AnswerNo}},
		{"pregnant_yes", Action{Kind: ActionPregnant, Value: models.AnswerYes}},
		{"pregnant_no", Action{Kind: ActionPregnant, Value: models.AnswerNo}},
		{"export_database", Action{Kind: ActionExport}},
		{"answer_test1_4_yes", Action{Kind: ActionAnswerBinary, Test: models.Test1, Question: 4, Value: "yes"}},
		{"answer_test2_0_no", Action{Kind: ActionAnswerBinary, Test: models.Test2, Question: 0, Value: "no"}},
		{"answer_test3_anxiety_2_1", Action{Kind: ActionAnswerTest3, Test: models.Test3, Part: models.PartAnxiety, Question: 2, Option: 1}},
		{"answer_test3_depression_6_3", Action{Kind: ActionAnswerTest3, Test: models.Test3, Part: models.PartDepression, Question: 6, Option: 3}},
		{"answer_test4_7_4", Action{Kind: ActionAnswerTest4, Test: models.Test4, Question: 7, Option: 4}},
		{"remind_later_42", Action{Kind: ActionRemindLater}},
		{"not_ready_42", Action{Kind: ActionRemindLater}},
		{"new_technique_42", Action{Kind: ActionNewTechnique}},
		{"ready_42", Action{Kind: ActionNewTechnique}},
		{"new_session_42", Action{Kind: ActionNewSession}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := DecodeAction(tt.data)
			if err != nil {
				t.Fatalf("DecodeAction(%q) failed: %v", tt.data, err)
			}
			if got != tt.want {
				t.Errorf("DecodeAction(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecodeActionRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"bogus",
		"answer_test1_x_yes",
		"answer_test1_1_maybe",
		"answer_test3_elation_0_0",
		"answer_test3_anxiety_0",
		"answer_test4_1_x",
		"answer_test4_-1_0",
		"start_test_5",
	}
	for _, data := range malformed {
		if _, err := DecodeAction(data); !errors.Is(err, ErrUnknownAction) {
			t.Errorf("DecodeAction(%q) error = %v, want ErrUnknownAction", data, err)
		}
	}
}
