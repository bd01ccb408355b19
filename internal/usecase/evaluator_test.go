package usecase

import (
	"testing"

	"github.com/eslsoft/learnpath/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateByType(t *testing.T) {
	ev := NewAnswerEvaluator()
	cases := []struct {
		name      string
		question  entity.Question
		submitted string
		want      bool
	}{
		{"blank answer", entity.Question{Type: entity.QuestionMultipleChoice, CorrectAnswer: "A"}, "   ", false},
		{"choice trimmed", entity.Question{Type: entity.QuestionMultipleChoice, CorrectAnswer: "Paris"}, " Paris ", true},
		{"choice case matters", entity.Question{Type: entity.QuestionMultipleChoice, CorrectAnswer: "Paris"}, "paris", false},

		{"fill blank insensitive", entity.Question{Type: entity.QuestionFillBlank, CorrectAnswer: "Photosynthesis"}, "photosynthesis", true},
		{"fill blank case sensitive", entity.Question{Type: entity.QuestionFillBlank, CorrectAnswer: "DNA", CaseSensitive: true}, "dna", false},
		{"fill blank exact", entity.Question{Type: entity.QuestionFillBlank, CorrectAnswer: "DNA", ExactMatch: true}, "DNA", true},
		{"fill blank exact mismatch", entity.Question{Type: entity.QuestionFillBlank, CorrectAnswer: "DNA", ExactMatch: true}, "Dna", false},

		{"true false", entity.Question{Type: entity.QuestionTrueFalse, CorrectAnswer: "True"}, "TRUE", true},
		{"true false wrong", entity.Question{Type: entity.QuestionTrueFalse, CorrectAnswer: "True"}, "false", false},

		{"numeric within default", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "3.14"}, "3.145", true},
		{"numeric outside default", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "3.14"}, "3.2", false},
		{"numeric custom tolerance", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "100", Tolerance: floatPtr(5)}, "104", true},
		{"numeric unparsable", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "3"}, "three", false},
		{"numeric bad reference", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "n/a"}, "3", false},
		{"numeric nan", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "3"}, "NaN", false},
		{"numeric hex answer", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "16"}, "0x10", false},
		{"numeric hex exponent", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "8"}, "0x1p3", false},
		{"numeric signed hex", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "-16"}, "-0X10", false},
		{"numeric hex reference", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "0x10"}, "16", false},
		{"numeric signed decimal", entity.Question{Type: entity.QuestionNumeric, CorrectAnswer: "-16"}, " -16.0 ", true},

		{"math equal after normalize", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "2x + 1"}, "2X+1", true},
		{"math power equals value", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "9"}, "3^2", true},
		{"math double star", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "8"}, "2 ** 3", true},
		{"math product wrong", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "7"}, "2*3", false},
		{"math sqrt", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "4"}, "√16", true},
		{"math pi", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "3.14"}, "π", true},
		{"math injection", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "1"}, "process.exit(1)", false},
		{"math divide by zero", entity.Question{Type: entity.QuestionMathExpression, CorrectAnswer: "0"}, "1/0", false},

		{"short answer normalized", entity.Question{Type: entity.QuestionShortAnswer, CorrectAnswer: "the cat"}, "  The   Cat ", true},
		{"short answer overlap", entity.Question{Type: entity.QuestionShortAnswer, CorrectAnswer: "plants make food from sunlight"}, "plants make their food using sunlight", true},
		{"short answer too little", entity.Question{Type: entity.QuestionShortAnswer, CorrectAnswer: "plants make food from sunlight"}, "sunlight", false},

		{"unknown type", entity.Question{Type: "drawing", CorrectAnswer: "Circle"}, "circle", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.question
			if got := ev.Evaluate(&q, tc.submitted); got != tc.want {
				t.Fatalf("Evaluate(%q) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}
}

func TestEvaluateNilQuestion(t *testing.T) {
	if NewAnswerEvaluator().Evaluate(nil, "x") {
		t.Fatal("expected nil question to be incorrect")
	}
}
