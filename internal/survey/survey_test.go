package survey

import (
	"sort"
	"strconv"
	"testing"

	"github.com/violetta-bot/violetta/internal/models"
)

func TestHADSPartsHaveFourValuedOptionsPerQuestion(t *testing.T) {
	parts := map[string]Test3PartDef{
		"anxiety":    Test3Anxiety,
		"depression": Test3Depression,
	}
	for name, part := range parts {
		if len(part.Questions) == 0 {
			t.Fatalf("%s part has no questions", name)
		}
		for i, q := range part.Questions {
			if len(q.Options) != 4 {
				t.Errorf("%s question %d has %d options, want 4", name, i, len(q.Options))
				continue
			}
			values := make([]int, 0, 4)
			for _, o := range q.Options {
				values = append(values, o.Value)
			}
			sort.Ints(values)
			for want, got := range values {
				if got != want {
					t.Errorf("%s question %d option values = %v, want a permutation of 0..3", name, i, values)
					break
				}
			}
		}
	}
}

func TestSymptomInventoryOptionValuesMatchPosition(t *testing.T) {
	for i, o := range Test4Def.Options {
		if o.Value != strconv.Itoa(i) {
			t.Errorf("option %d value = %q, want %d", i, o.Value, i)
		}
	}
	if len(Test4Def.Options) != 5 {
		t.Errorf("symptom inventory has %d options, want 5", len(Test4Def.Options))
	}
}

func TestModalityScalesAreDisjoint(t *testing.T) {
	seen := make(map[int]models.Modality)
	for modality, indices := range ModalityScales {
		for _, idx := range indices {
			if other, ok := seen[idx]; ok {
				t.Errorf("question %d belongs to both %s and %s", idx, other, modality)
			}
			seen[idx] = modality
		}
	}
}

func TestAccentuationScalesCoverTenTypes(t *testing.T) {
	if len(AccentuationScales) != 10 {
		t.Fatalf("have %d accentuation scales, want 10", len(AccentuationScales))
	}
	for num, scale := range AccentuationScales {
		if num < 1 || num > 10 {
			t.Errorf("unexpected scale number %d", num)
		}
		if scale.Multiplier <= 0 {
			t.Errorf("scale %d multiplier = %d, want positive", num, scale.Multiplier)
		}
		if len(scale.Positive)+len(scale.Negative) == 0 {
			t.Errorf("scale %d has no member questions", num)
		}
	}
}

func TestDefinitionLookups(t *testing.T) {
	if got := TestFor(models.Test2); got.Title != Test2Def.Title {
		t.Errorf("TestFor(test2) = %q", got.Title)
	}
	if got := TestFor(models.Test4); got.Title != Test4Def.Title {
		t.Errorf("TestFor(test4) = %q", got.Title)
	}
	if got := TestFor(models.Test1); got.Title != Test1Def.Title {
		t.Errorf("TestFor(test1) = %q", got.Title)
	}
	if got := Test3PartFor(models.PartDepression); got.Title != Test3Depression.Title {
		t.Errorf("Test3PartFor(depression) = %q", got.Title)
	}
	if got := Test3PartFor(models.PartAnxiety); got.Title != Test3Anxiety.Title {
		t.Errorf("Test3PartFor(anxiety) = %q", got.Title)
	}
}
