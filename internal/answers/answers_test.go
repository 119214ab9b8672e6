package answers

import (
	"reflect"
	"sync"
	"testing"

	"github.com/violetta-bot/violetta/internal/models"
)

func TestRecordAndGet(t *testing.T) {
	a := NewAccumulator()
	a.Init(42, models.Test1)
	a.Record(42, models.Test1, 0, models.AnswerYes)
	a.Record(42, models.Test1, 1, models.AnswerNo)

	got := a.Get(42, models.Test1)
	want := []string{models.AnswerYes, models.AnswerNo}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestGetAbsentIsEmpty(t *testing.T) {
	a := NewAccumulator()
	if got := a.Get(7, models.Test2); len(got) != 0 {
		t.Errorf("Get on absent collection = %v, want empty", got)
	}
}

func TestSparseGrowth(t *testing.T) {
	a := NewAccumulator()
	a.Record(42, models.Test4, 3, "2")

	got := a.Get(42, models.Test4)
	want := []string{"", "", "", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestInitResets(t *testing.T) {
	a := NewAccumulator()
	a.Record(42, models.Test1, 0, models.AnswerYes)
	a.Init(42, models.Test1)
	if got := a.Get(42, models.Test1); len(got) != 0 {
		t.Errorf("Get after Init = %v, want empty", got)
	}
}

func TestPartsIndependent(t *testing.T) {
	a := NewAccumulator()
	a.RecordPart(42, models.PartAnxiety, 0, "3")
	a.RecordPart(42, models.PartDepression, 0, "1")

	if got := a.GetPart(42, models.PartAnxiety); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("anxiety part = %v, want [3]", got)
	}
	if got := a.GetPart(42, models.PartDepression); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("depression part = %v, want [1]", got)
	}
	// Resetting one part leaves the other untouched.
	a.InitPart(42, models.PartAnxiety)
	if got := a.GetPart(42, models.PartDepression); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("depression part after anxiety reset = %v, want [1]", got)
	}
}

func TestIdentitiesIndependent(t *testing.T) {
	a := NewAccumulator()
	a.Record(1, models.Test1, 0, models.AnswerYes)
	a.Record(2, models.Test1, 0, models.AnswerNo)

	if got := a.Get(1, models.Test1); !reflect.DeepEqual(got, []string{models.AnswerYes}) {
		t.Errorf("identity 1 = %v", got)
	}
	if got := a.Get(2, models.Test1); !reflect.DeepEqual(got, []string{models.AnswerNo}) {
		t.Errorf("identity 2 = %v", got)
	}
}

func TestClearDropsAllTests(t *testing.T) {
	a := NewAccumulator()
	a.Record(42, models.Test1, 0, models.AnswerYes)
	a.Record(42, models.Test4, 0, "4")
	a.RecordPart(42, models.PartAnxiety, 0, "2")
	a.Record(7, models.Test1, 0, models.AnswerNo)

	a.Clear(42)

	if got := a.Get(42, models.Test1); len(got) != 0 {
		t.Errorf("test1 after Clear = %v, want empty", got)
	}
	if got := a.Get(42, models.Test4); len(got) != 0 {
		t.Errorf("test4 after Clear = %v, want empty", got)
	}
	if got := a.GetPart(42, models.PartAnxiety); len(got) != 0 {
		t.Errorf("anxiety part after Clear = %v, want empty", got)
	}
	if got := a.Get(7, models.Test1); !reflect.DeepEqual(got, []string{models.AnswerNo}) {
		t.Errorf("other identity affected by Clear: %v", got)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a := NewAccumulator()
	a.Record(42, models.Test1, 0, models.AnswerYes)

	got := a.Get(42, models.Test1)
	got[0] = "mutated"

	if fresh := a.Get(42, models.Test1); fresh[0] != models.AnswerYes {
		t.Errorf("internal state mutated through returned slice: %v", fresh)
	}
}

func TestConcurrentIdentities(t *testing.T) {
	a := NewAccumulator()
	var wg sync.WaitGroup
	for id := int64(0); id < 20; id++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			for q := 0; q < 10; q++ {
				a.Record(chatID, models.Test1, q, models.AnswerYes)
			}
		}(id)
	}
	wg.Wait()

	for id := int64(0); id < 20; id++ {
		if got := a.Get(id, models.Test1); len(got) != 10 {
			t.Errorf("identity %d collection length = %d, want 10", id, len(got))
		}
	}
}
