package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/violetta-bot/violetta/internal/models"
)

// ActionKind enumerates the decoded callback actions.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	// ActionStartIntake begins the intake questionnaire ("start_test").
	ActionStartIntake
	// ActionStartTest opens the first question of a single-part test.
	ActionStartTest
	// ActionStartTest3Part opens the first question of a HADS part.
	ActionStartTest3Part
	// ActionAnswerBinary is a yes/no answer for tests 1 and 2.
	ActionAnswerBinary
	// ActionAnswerTest3 is an option-index answer within a HADS part.
	ActionAnswerTest3
	// ActionAnswerTest4 is an option-index answer for the symptom inventory.
	ActionAnswerTest4
	// ActionGender is the gender choice.
	ActionGender
	// ActionMeds is the medication yes/no choice.
	ActionMeds
	// ActionPregnant is the pregnancy yes/no choice.
	ActionPregnant
	// ActionRemindLater defers the reminder by the default delay.
	ActionRemindLater
	// ActionNewTechnique regenerates a recommendation from stored results.
	ActionNewTechnique
	// ActionNewSession re-sends the stored recommendation.
	ActionNewSession
	// ActionExport produces the admin spreadsheet.
	ActionExport
)

// Action is a decoded callback token. Only the fields relevant to the kind
// are populated.
type Action struct {
	Kind     ActionKind
	Test     models.TestID
	Part     models.Test3Part
	Question int
	Option   int    // option index for tests 3 and 4
	Value    string // raw answer value for binary tests
}

// ErrUnknownAction indicates a callback token no decoder rule matched.
var ErrUnknownAction = fmt.Errorf("unknown callback action")

// DecodeAction parses a raw callback token into a tagged Action. Tokens are
// underscore-joined; malformed numeric fields fail decoding rather than
// silently becoming zero.
func DecodeAction(data string) (Action, error) {
	switch data {
	case "start_test":
		return Action{Kind: ActionStartIntake}, nil
	case "start_test_1":
		return Action{Kind: ActionStartTest, Test: models.Test1}, nil
	case "start_test_2":
		return Action{Kind: ActionStartTest, Test: models.Test2}, nil
	case "start_test_3_anxiety":
		return Action{Kind: ActionStartTest3Part, Test: models.Test3, Part: models.PartAnxiety}, nil
	case "start_test_3_depression":
		return Action{Kind: ActionStartTest3Part, Test: models.Test3, Part: models.PartDepression}, nil
	case "start_test_4":
		return Action{Kind: ActionStartTest, Test: models.Test4}, nil
	case "male", "female":
		return Action{Kind: ActionGender, Value: data}, nil
	case "meds_yes":
		return Action{Kind: ActionMeds, Value: models.AnswerYes}, nil
	case "meds_no":
		return Action{Kind: ActionMeds, Value: models.AnswerNo}, nil
	case "pregnant_yes":
		return Action{Kind: ActionPregnant, Value: models.AnswerYes}, nil
	case "pregnant_no":
		return Action{Kind: ActionPregnant, Value: models.AnswerNo}, nil
	case "export_database":
		return Action{Kind: ActionExport}, nil
	}

	switch {
	case strings.HasPrefix(data, "answer_test3_"):
		// answer_test3_<part>_<question>_<optionIndex>
		rest := strings.TrimPrefix(data, "answer_test3_")
		parts := strings.Split(rest, "_")
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
		part := models.Test3Part(parts[0])
		if !models.IsValidTest3Part(part) {
			return Action{}, fmt.Errorf("%w: bad part in %q", ErrUnknownAction, data)
		}
		q, err := strconv.Atoi(parts[1])
		if err != nil || q < 0 {
			return Action{}, fmt.Errorf("%w: bad question in %q", ErrUnknownAction, data)
		}
		opt, err := strconv.Atoi(parts[2])
		if err != nil || opt < 0 {
			return Action{}, fmt.Errorf("%w: bad option in %q", ErrUnknownAction, data)
		}
		return Action{Kind: ActionAnswerTest3, Test: models.Test3, Part: part, Question: q, Option: opt}, nil

	case strings.HasPrefix(data, "answer_test4_"):
		// answer_test4_<question>_<optionIndex>
		rest := strings.TrimPrefix(data, "answer_test4_")
		parts := strings.Split(rest, "_")
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
		q, err := strconv.Atoi(parts[0])
		if err != nil || q < 0 {
			return Action{}, fmt.Errorf("%w: bad question in %q", ErrUnknownAction, data)
		}
		opt, err := strconv.Atoi(parts[1])
		if err != nil || opt < 0 {
			return Action{}, fmt.Errorf("%w: bad option in %q", ErrUnknownAction, data)
		}
		return Action{Kind: ActionAnswerTest4, Test: models.Test4, Question: q, Option: opt}, nil

	case strings.HasPrefix(data, "answer_test1_"), strings.HasPrefix(data, "answer_test2_"):
		// answer_<test>_<question>_<value>
		testID := models.Test1
		rest := strings.TrimPrefix(data, "answer_test1_")
		if strings.HasPrefix(data, "answer_test2_") {
			testID = models.Test2
			rest = strings.TrimPrefix(data, "answer_test2_")
		}
		parts := strings.Split(rest, "_")
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
		q, err := strconv.Atoi(parts[0])
		if err != nil || q < 0 {
			return Action{}, fmt.Errorf("%w: bad question in %q", ErrUnknownAction, data)
		}
		if parts[1] != models.AnswerYes && parts[1] != models.AnswerNo {
			return Action{}, fmt.Errorf("%w: bad value in %q", ErrUnknownAction, data)
		}
		return Action{Kind: ActionAnswerBinary, Test: testID, Question: q, Value: parts[1]}, nil

	case strings.HasPrefix(data, "remind_later_"), strings.HasPrefix(data, "not_ready_"):
		return Action{Kind: ActionRemindLater}, nil
	case strings.HasPrefix(data, "new_technique_"), strings.HasPrefix(data, "ready_"):
		return Action{Kind: ActionNewTechnique}, nil
	case strings.HasPrefix(data, "new_session_"):
		return Action{Kind: ActionNewSession}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
}
