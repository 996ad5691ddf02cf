package catalog

import (
	"fmt"
	"time"
)

// Question banks. Items mix Filipino and English prompts; the cultural
// context tag is carried for display, not grading.

var readingQuestions = []Question{
	{
		ID:              "read-001",
		Type:            TypeMultipleChoice,
		Subject:         SubjectReading,
		Difficulty:      DifficultyEasy,
		AgeGroup:        "6-8",
		Prompt:          "Ang mga bata ay naglalaro sa parke. Saan naglalaro ang mga bata?",
		Options:         []string{"Sa bahay", "Sa parke", "Sa paaralan", "Sa tindahan"},
		CorrectAnswer:   "Sa parke",
		Explanation:     "Ayon sa pangungusap, ang mga bata ay naglalaro sa parke.",
		SkillArea:       "comprehension",
		CulturalContext: "Filipino community park setting",
	},
	{
		ID:              "read-002",
		Type:            TypeMultipleChoice,
		Subject:         SubjectReading,
		Difficulty:      DifficultyMedium,
		AgeGroup:        "9-12",
		Prompt:          "Si Maria ay nag-aral ng mabuti para sa pagsusulit. Anong katangian ang ipinakita ni Maria?",
		Options:         []string{"Tamad", "Masipag", "Maingay", "Malungkot"},
		CorrectAnswer:   "Masipag",
		Explanation:     "Ang pag-aaral ng mabuti ay nagpapakita ng pagiging masipag.",
		SkillArea:       "criticalAnalysis",
		CulturalContext: "Filipino educational values",
	},
	{
		ID:              "read-003",
		Type:            TypeOpenEnded,
		Subject:         SubjectReading,
		Difficulty:      DifficultyHard,
		AgeGroup:        "13-15",
		Prompt:          "Basahin ang sumusunod na talata at ipaliwanag ang pangunahing mensahe: \"Ang kultura ng Pilipinas ay mayaman at iba-iba. Mula sa mga sayaw ng Luzon hanggang sa mga awit ng Mindanao, bawat rehiyon ay may sariling natatanging tradisyon.\"",
		CorrectAnswer:   "Ang pangunahing mensahe ay ang pagkakaiba-iba at yaman ng kulturang Pilipino sa iba't ibang rehiyon.",
		Explanation:     "Ang talata ay nagbibigay-diin sa diversity at richness ng Filipino culture across different regions.",
		SkillArea:       "culturalContext",
		CulturalContext: "Philippine cultural diversity",
		TimeLimitSecs:   300,
	},
	{
		ID:              "read-004",
		Type:            TypeMultipleChoice,
		Subject:         SubjectReading,
		Difficulty:      DifficultyEasy,
		AgeGroup:        "6-8",
		Prompt:          "The children are playing in the park. Where are the children playing?",
		Options:         []string{"At home", "In the park", "At school", "In the store"},
		CorrectAnswer:   "In the park",
		Explanation:     "According to the sentence, the children are playing in the park.",
		SkillArea:       "comprehension",
		CulturalContext: "Community park setting",
	},
	{
		ID:              "read-005",
		Type:            TypeMultipleChoice,
		Subject:         SubjectReading,
		Difficulty:      DifficultyMedium,
		AgeGroup:        "9-12",
		Prompt:          "Maria studied hard for the test. What quality did Maria show?",
		Options:         []string{"Lazy", "Hardworking", "Noisy", "Sad"},
		CorrectAnswer:   "Hardworking",
		Explanation:     "Studying hard shows being hardworking and diligent.",
		SkillArea:       "criticalAnalysis",
		CulturalContext: "Educational values",
	},
}

var mathematicsQuestions = []Question{
	{
		ID:              "math-001",
		Type:            TypeMultipleChoice,
		Subject:         SubjectMathematics,
		Difficulty:      DifficultyEasy,
		AgeGroup:        "6-8",
		Prompt:          "Si Juan ay may 5 mangga. Binigyan siya ng 3 pang mangga ng kanyang nanay. Ilan lahat ang mangga ni Juan?",
		Options:         []string{"6", "7", "8", "9"},
		CorrectAnswer:   "8",
		Explanation:     "5 + 3 = 8 mangga",
		SkillArea:       "numberOperations",
		CulturalContext: "Filipino fruits and family context",
	},
	{
		ID:              "math-002",
		Type:            TypeMultipleChoice,
		Subject:         SubjectMathematics,
		Difficulty:      DifficultyMedium,
		AgeGroup:        "9-12",
		Prompt:          "Ang isang jeepney ay may 14 na pasahero. Kung bumaba ang 6 na pasahero at sumakay naman ang 4, ilan ang pasahero ngayon?",
		Options:         []string{"10", "12", "14", "16"},
		CorrectAnswer:   "12",
		Explanation:     "14 - 6 + 4 = 12 pasahero",
		SkillArea:       "numberOperations",
		CulturalContext: "Philippine public transportation",
	},
	{
		ID:              "math-003",
		Type:            TypeOpenEnded,
		Subject:         SubjectMathematics,
		Difficulty:      DifficultyHard,
		AgeGroup:        "13-15",
		Prompt:          "Ang presyo ng bigas ay tumaas ng 15% mula sa dating presyo na ₱45 kada kilo. Ano ang bagong presyo ng bigas?",
		CorrectAnswer:   "₱51.75",
		Explanation:     "₱45 × 1.15 = ₱51.75",
		SkillArea:       "algebra",
		CulturalContext: "Philippine market prices",
		TimeLimitSecs:   180,
	},
	{
		ID:              "math-004",
		Type:            TypeMultipleChoice,
		Subject:         SubjectMathematics,
		Difficulty:      DifficultyEasy,
		AgeGroup:        "6-8",
		Prompt:          "Juan has 5 mangoes. His mother gave him 3 more mangoes. How many mangoes does Juan have in total?",
		Options:         []string{"6", "7", "8", "9"},
		CorrectAnswer:   "8",
		Explanation:     "5 + 3 = 8 mangoes",
		SkillArea:       "numberOperations",
		CulturalContext: "Fruits and family context",
	},
	{
		ID:              "math-005",
		Type:            TypeMultipleChoice,
		Subject:         SubjectMathematics,
		Difficulty:      DifficultyMedium,
		AgeGroup:        "9-12",
		Prompt:          "A rectangle has a length of 12 cm and a width of 8 cm. What is its area?",
		Options:         []string{"20 cm²", "40 cm²", "96 cm²", "160 cm²"},
		CorrectAnswer:   "96 cm²",
		Explanation:     "Area = length × width = 12 × 8 = 96 cm²",
		SkillArea:       "geometry",
		CulturalContext: "Basic geometry",
	},
}

var scienceQuestions = []Question{
	{
		ID:            "sci-001",
		Type:          TypeTrueFalse,
		Subject:       SubjectScience,
		Difficulty:    DifficultyEasy,
		AgeGroup:      "6-8",
		Prompt:        "Plants need sunlight to make their own food.",
		Options:       []string{"True", "False"},
		CorrectAnswer: "True",
		Explanation:   "Plants use sunlight for photosynthesis, producing their own food.",
		SkillArea:     "lifeSciences",
	},
	{
		ID:             "sci-002",
		Type:           TypeMatching,
		Subject:        SubjectScience,
		Difficulty:     DifficultyMedium,
		AgeGroup:       "9-12",
		Prompt:         "Select all of the states of matter.",
		Options:        []string{"Solid", "Liquid", "Gas", "Energy"},
		CorrectAnswers: []string{"Solid", "Liquid", "Gas"},
		Explanation:    "Matter exists as solid, liquid, and gas. Energy is not a state of matter.",
		SkillArea:      "physicalSciences",
	},
	{
		ID:              "sci-003",
		Type:            TypeMultipleChoice,
		Subject:         SubjectScience,
		Difficulty:      DifficultyMedium,
		AgeGroup:        "9-12",
		Prompt:          "Ang Bulkang Mayon ay kilala sa kanyang hugis. Anong uri ng anyong lupa ang bulkan?",
		Options:         []string{"Bundok", "Talampas", "Lambak", "Kapatagan"},
		CorrectAnswer:   "Bundok",
		Explanation:     "Ang bulkan ay isang uri ng bundok na nabuo mula sa lava at abo.",
		SkillArea:       "earthSciences",
		CulturalContext: "Philippine geography",
	},
	{
		ID:            "sci-004",
		Type:          TypeOpenEnded,
		Subject:       SubjectScience,
		Difficulty:    DifficultyHard,
		AgeGroup:      "13-15",
		Prompt:        "A student waters one plant daily and another weekly, keeping everything else the same. What is the variable being tested?",
		CorrectAnswer: "Watering frequency",
		Explanation:   "Only the watering schedule differs between the plants, so it is the independent variable.",
		SkillArea:     "scientificInquiry",
		TimeLimitSecs: 240,
	},
}

// byAgeGroup filters a bank to questions matching the given age group.
func byAgeGroup(bank []Question, ageGroup string) []Question {
	var out []Question
	for _, q := range bank {
		if q.AgeGroup == ageGroup {
			out = append(out, q)
		}
	}
	return out
}

func seedAssessments() []Assessment {
	combined := make([]Question, 0, len(readingQuestions)+len(mathematicsQuestions))
	combined = append(combined, readingQuestions...)
	combined = append(combined, mathematicsQuestions...)

	return []Assessment{
		{
			ID:          "reading-basic",
			Title:       "Basic Reading Assessment",
			Subject:     SubjectReading,
			AgeGroup:    "6-8",
			Duration:    30 * time.Minute,
			Questions:   byAgeGroup(readingQuestions, "6-8"),
			Description: "Foundation reading skills assessment for young learners",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          "reading-intermediate",
			Title:       "Intermediate Reading Assessment",
			Subject:     SubjectReading,
			AgeGroup:    "9-12",
			Duration:    45 * time.Minute,
			Questions:   byAgeGroup(readingQuestions, "9-12"),
			Description: "Comprehensive reading assessment for intermediate learners",
			Difficulty:  DifficultyMedium,
		},
		{
			ID:          "reading-advanced",
			Title:       "Advanced Reading Assessment",
			Subject:     SubjectReading,
			AgeGroup:    "13-15",
			Duration:    60 * time.Minute,
			Questions:   byAgeGroup(readingQuestions, "13-15"),
			Description: "PISA-aligned reading assessment for advanced learners",
			Difficulty:  DifficultyHard,
		},
		{
			ID:          "math-basic",
			Title:       "Basic Mathematics Assessment",
			Subject:     SubjectMathematics,
			AgeGroup:    "6-8",
			Duration:    30 * time.Minute,
			Questions:   byAgeGroup(mathematicsQuestions, "6-8"),
			Description: "Foundation mathematics skills assessment",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          "math-intermediate",
			Title:       "Intermediate Mathematics Assessment",
			Subject:     SubjectMathematics,
			AgeGroup:    "9-12",
			Duration:    45 * time.Minute,
			Questions:   byAgeGroup(mathematicsQuestions, "9-12"),
			Description: "Comprehensive mathematics assessment",
			Difficulty:  DifficultyMedium,
		},
		{
			ID:          "math-advanced",
			Title:       "Advanced Mathematics Assessment",
			Subject:     SubjectMathematics,
			AgeGroup:    "13-15",
			Duration:    60 * time.Minute,
			Questions:   byAgeGroup(mathematicsQuestions, "13-15"),
			Description: "PISA-aligned mathematics assessment",
			Difficulty:  DifficultyHard,
		},
		{
			ID:          "science-basic",
			Title:       "Science Exploration Assessment",
			Subject:     SubjectScience,
			AgeGroup:    "6-12",
			Duration:    30 * time.Minute,
			Questions:   scienceQuestions[:3],
			Description: "Foundation science skills across life, physical and earth sciences",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          "combined-adaptive",
			Title:       "Adaptive Combined Assessment",
			Subject:     SubjectCombined,
			AgeGroup:    "9-15",
			Duration:    90 * time.Minute,
			Questions:   combined,
			Description: "Comprehensive adaptive assessment covering reading and mathematics",
			Difficulty:  DifficultyAdaptive,
		},
	}
}

func init() {
	assessments := seedAssessments()
	if err := validate(assessments); err != nil {
		panic(fmt.Sprintf("catalog seed data invalid: %v", err))
	}
	idx = buildIndex(assessments)
}
