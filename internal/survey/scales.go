package survey

import "github.com/violetta-bot/violetta/internal/models"

// AccentuationScale is one of the ten Leonhard scales. Question indices are
// 1-based. A positive index contributes when the answer is "yes", a negative
// index when the answer is "no"; the match count is multiplied by Multiplier.
type AccentuationScale struct {
	Positive   []int
	Negative   []int
	Multiplier int
}

// AccentuationScales maps scale number (1-10) to its membership table.
var AccentuationScales = map[int]AccentuationScale{
	1: { // Гипертимность
		Positive:   []int{1, 11, 23, 33, 45, 55, 67, 77},
		Multiplier: 3,
	},
	2: { // Возбудимость
		Positive:   []int{2, 15, 24, 34, 37, 56, 68, 78, 81},
		Multiplier: 2,
	},
	3: { // Эмотивность
		Positive:   []int{3, 13, 35, 47, 57, 69, 79},
		Negative:   []int{25},
		Multiplier: 3,
	},
	4: { // Педантичность
		Positive:   []int{4, 14, 17, 26, 39, 48, 58, 61, 70, 80, 83},
		Negative:   []int{36},
		Multiplier: 2,
	},
	5: { // Тревожность
		Positive:   []int{16, 27, 38, 49, 60, 71, 82},
		Negative:   []int{5},
		Multiplier: 3,
	},
	6: { // Циклотимность
		Positive:   []int{6, 18, 28, 40, 50, 62, 72, 84},
		Multiplier: 3,
	},
	7: { // Демонстративность
		Positive:   []int{7, 19, 22, 29, 41, 44, 63, 66, 73, 85, 88},
		Negative:   []int{51},
		Multiplier: 2,
	},
	8: { // Неуравновешенность
		Positive:   []int{8, 20, 30, 42, 52, 64, 74, 86},
		Multiplier: 3,
	},
	9: { // Дистимность
		Positive:   []int{9, 21, 43, 75, 87},
		Negative:   []int{31, 53, 65},
		Multiplier: 3,
	},
	10: { // Экзальтированность
		Positive:   []int{10, 32, 54, 76},
		Multiplier: 6,
	},
}

// ModalityScales maps each perceptual channel to its 1-based question index
// list. The lists are disjoint by construction: a "yes" counts toward at
// most one category.
var ModalityScales = map[models.Modality][]int{
	models.ModalityVisual:      {1, 5, 8, 10, 12, 14, 19, 21, 23, 27, 31, 32, 39, 40, 42, 45},
	models.ModalityAudial:      {2, 6, 7, 13, 15, 17, 20, 24, 26, 33, 34, 36, 37, 43, 46, 48},
	models.ModalityKinesthetic: {3, 4, 9, 11, 16, 18, 22, 25, 28, 29, 30, 35, 38, 41, 44, 47},
}

// SCL90Scale is one SCL-90-R symptom category with its 0-based question
// index membership.
type SCL90Scale struct {
	Questions   []int
	Description string
}

// SCL90Scales maps category key to its membership table.
var SCL90Scales = map[string]SCL90Scale{
	"SOM": {
		Questions:   []int{0, 3, 11, 26, 39, 41, 47, 48, 51, 52, 55, 57},
		Description: "Соматизация",
	},
	"OCD": {
		Questions:   []int{2, 8, 9, 27, 37, 44, 45, 50, 54, 64},
		Description: "Обсессивно-компульсивные расстройства",
	},
	"INT": {
		Questions:   []int{5, 20, 33, 35, 36, 40, 60, 68, 72},
		Description: "Межличностная сензитивность",
	},
	"DEP": {
		Questions:   []int{4, 13, 14, 19, 21, 25, 28, 29, 30, 31, 53, 70, 78},
		Description: "Депрессия",
	},
	"ANX": {
		Questions:   []int{1, 16, 22, 32, 38, 56, 71, 77, 79, 85},
		Description: "Тревожность",
	},
	"HOS": {
		Questions:   []int{10, 23, 62, 66, 73, 80},
		Description: "Враждебность",
	},
	"PHOB": {
		Questions:   []int{12, 24, 46, 49, 69, 74, 81},
		Description: "Фобическая тревожность",
	},
	"PAR": {
		Questions:   []int{7, 17, 42, 67, 75, 82},
		Description: "Паранойяльные симптомы",
	},
	"PSY": {
		Questions:   []int{6, 15, 34, 61, 76, 83, 84, 86, 87, 89},
		Description: "Психотизм",
	},
	"ADD": {
		Questions:   []int{18, 59, 43, 58, 63, 65, 88},
		Description: "Дополнительные вопросы",
	},
}

// HADS band thresholds, inclusive upper bounds. A part score <= 7 is normal,
// 8-10 subclinical, above 10 clinical.
const (
	HADSNormalMax      = 7
	HADSSubclinicalMax = 10
)
