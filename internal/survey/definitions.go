// Package survey holds the static definitions of the four instruments: the
// question sets, answer options, and scoring-scale membership tables. All
// data here is read-only.
package survey

import "github.com/violetta-bot/violetta/internal/models"

// Option is one selectable answer with its display label and raw value.
type Option struct {
	Text  string
	Value string
}

// ValuedOption is one selectable answer carrying an explicit integer value.
// Option order encodes clinical phrasing, not rank, so values are not
// necessarily monotonic with position.
type ValuedOption struct {
	Text  string
	Value int
}

// Test describes a single-part instrument with one shared option set.
type Test struct {
	Title     string
	Questions []string
	Options   []Option
}

// Test3Question is one HADS question with its own four-option value list.
type Test3Question struct {
	Text    string
	Options []ValuedOption
}

// Test3PartDef is one of the two HADS parts.
type Test3PartDef struct {
	Title     string
	Questions []Test3Question
}

// BinaryOptions is the shared Да/Нет option set of tests 1 and 2.
var BinaryOptions = []Option{
	{Text: "Да", Value: models.AnswerYes},
	{Text: "Нет", Value: models.AnswerNo},
}

// Test1Def is the character accentuation questionnaire.
var Test1Def = Test{
	Title: "Тест на акцентуации характера",
	Questions: []string{
		"Сделав что-либо, Вы сомневаетесь, все ли сделано правильно, и не успокаиваетесь до тех пор, пока не убедитесь еще раз в этом.",
		"В детстве вы были таким же смелым, как другие Ваши сверстники.",
		"Если бы Вам надо было играть на сцене, Вы смогли бы войти в роль настолько, чтобы забыть, что это только игра.",
	},
	Options: BinaryOptions,
}

// Test2Def is the leading perceptual modality questionnaire.
var Test2Def = Test{
	Title: "Тест на определение ведущей перцептивной модальности",
	Questions: []string{
		"Люблю наблюдать за облаками и звездами.",
		"Через прикосновение можно сказать значительно больше, чем словами.",
		"В шуме не могу сосредоточиться.",
	},
	Options: BinaryOptions,
}

// Test3Title is the HADS instrument title.
const Test3Title = "Госпитальная Шкала Тревоги и Депрессии (HADS)"

// Test3Anxiety is part I of HADS.
var Test3Anxiety = Test3PartDef{
	Title: "Часть I (оценка уровня ТРЕВОГИ)",
	Questions: []Test3Question{
		{
			Text: "Я испытываю напряжение, мне не по себе",
			Options: []ValuedOption{
				{Text: "все время", Value: 3},
				{Text: "часто", Value: 2},
				{Text: "время от времени, иногда", Value: 1},
				{Text: "совсем не испытываю", Value: 0},
			},
		},
		{
			Text: "Беспокойные мысли крутятся у меня в голове",
			Options: []ValuedOption{
				{Text: "постоянно", Value: 3},
				{Text: "большую часть времени", Value: 2},
				{Text: "время от времени и не так часто", Value: 1},
				{Text: "только иногда", Value: 0},
			},
		},
		{
			Text: "Я легко могу присесть и расслабиться",
			Options: []ValuedOption{
				{Text: "определенно, это так", Value: 0},
				{Text: "наверно, это так", Value: 1},
				{Text: "лишь изредка, это так", Value: 2},
				{Text: "совсем не могу", Value: 3},
			},
		},
		{
			Text: "Я испытываю внутреннее напряжение или дрожь",
			Options: []ValuedOption{
				{Text: "совсем не испытываю", Value: 0},
				{Text: "иногда", Value: 1},
				{Text: "часто", Value: 2},
				{Text: "очень часто", Value: 3},
			},
		},
		{
			Text: "Я испытываю неусидчивость, мне постоянно нужно двигаться",
			Options: []ValuedOption{
				{Text: "определенно, это так", Value: 3},
				{Text: "наверно, это так", Value: 2},
				{Text: "лишь в некоторой степени, это так", Value: 1},
				{Text: "совсем не испытываю", Value: 0},
			},
		},
		{
			Text: "У меня бывает внезапное чувство паники",
			Options: []ValuedOption{
				{Text: "очень часто", Value: 3},
				{Text: "довольно часто", Value: 2},
				{Text: "не так уж часто", Value: 1},
				{Text: "совсем не бывает", Value: 0},
			},
		},
	},
}

// Test3Depression is part II of HADS.
var Test3Depression = Test3PartDef{
	Title: "Часть II (оценка уровня ДЕПРЕССИИ)",
	Questions: []Test3Question{
		{
			Text: "То, что приносило мне большое удовольствие, и сейчас вызывает у меня такое же чувство",
			Options: []ValuedOption{
				{Text: "определенно, это так", Value: 0},
				{Text: "наверное, это так", Value: 1},
				{Text: "лишь в очень малой степени, это так", Value: 2},
				{Text: "это совсем не так", Value: 3},
			},
		},
		{
			Text: "Я способен рассмеяться и увидеть в том или ином событии смешное",
			Options: []ValuedOption{
				{Text: "определенно, это так", Value: 0},
				{Text: "наверное, это так", Value: 1},
				{Text: "лишь в очень малой степени, это так", Value: 2},
				{Text: "совсем не способен", Value: 3},
			},
		},
		{
			Text: "Я испытываю бодрость",
			Options: []ValuedOption{
				{Text: "совсем не испытываю", Value: 3},
				{Text: "очень редко", Value: 2},
				{Text: "иногда", Value: 1},
				{Text: "практически все время", Value: 0},
			},
		},
		{
			Text: "Мне кажется, что я стал все делать очень медленно",
			Options: []ValuedOption{
				{Text: "практически все время", Value: 3},
				{Text: "часто", Value: 2},
				{Text: "иногда", Value: 1},
				{Text: "совсем нет", Value: 0},
			},
		},
		{
			Text: "Я не слежу за своей внешностью",
			Options: []ValuedOption{
				{Text: "определенно, это так", Value: 3},
				{Text: "я не уделяю этому столько времени, сколько нужно", Value: 2},
				{Text: "может быть, я стал меньше уделять этому времени", Value: 1},
				{Text: "я слежу за собой так же, как и раньше", Value: 0},
			},
		},
		{
			Text: "Я считаю, что мои дела (занятия, увлечения) могут принести мне чувство удовлетворения",
			Options: []ValuedOption{
				{Text: "точно так же, как и обычно", Value: 0},
				{Text: "да, но не в той степени, как раньше", Value: 1},
				{Text: "значительно меньше, чем обычно", Value: 2},
				{Text: "совсем так не считаю", Value: 3},
			},
		},
		{
			Text: "Я могу получить удовольствие от хорошей книги, радио- или телепрограммы",
			Options: []ValuedOption{
				{Text: "часто", Value: 0},
				{Text: "иногда", Value: 1},
				{Text: "редко", Value: 2},
				{Text: "очень редко", Value: 3},
			},
		},
	},
}

// Test3PartFor returns the definition for the given HADS part.
func Test3PartFor(p models.Test3Part) Test3PartDef {
	if p == models.PartDepression {
		return Test3Depression
	}
	return Test3Anxiety
}

// Test4Def is the SCL-90-R symptom inventory. Every question shares one
// five-point options list whose position equals its value.
var Test4Def = Test{
	Title: "Опросник выраженности психопатологической симптоматики (SCL-90-R)",
	Questions: []string{
		"Головные боли",
		"Нервозность или внутренняя дрожь",
		"Повторяющиеся неприятные неотвязные мысли",
		"Слабость или головокружение",
		"Мысли о том, что с вашим телом что-то не в порядке",
		"То, что вы не чувствуете близости ни к кому",
		"Чувство вины",
		"Мысли о том, что с вашим рассудком творится что-то неладное",
	},
	Options: []Option{
		{Text: "Совсем нет", Value: "0"},
		{Text: "Немного", Value: "1"},
		{Text: "Умеренно", Value: "2"},
		{Text: "Сильно", Value: "3"},
		{Text: "Очень сильно", Value: "4"},
	},
}

// TestFor returns the single-part definition for tests 1, 2 and 4.
func TestFor(id models.TestID) Test {
	switch id {
	case models.Test2:
		return Test2Def
	case models.Test4:
		return Test4Def
	default:
		return Test1Def
	}
}
