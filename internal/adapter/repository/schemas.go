package repository

import "github.com/eslsoft/learnpath/pkg/filterexpr"

var listProgressSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"learned": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Learned"},
		},
		"level": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:  "Level",
				filterexpr.OpGTE: "MinLevel",
				filterexpr.OpLTE: "MaxLevel",
			},
		},
		"next_review": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "ReviewAfter",
				filterexpr.OpLTE: "ReviewBefore",
			},
		},
		"word_id": {
			Kind: filterexpr.KindNumber,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "WordID"},
		},
	},
	Order: filterexpr.OrderSchema{
		Fields: map[string]string{
			"next_review":  "next_review",
			"level":        "learning_level",
			"last_studied": "last_studied",
			"created_at":   "created_at",
			"id":           "id",
		},
		DefaultKey:    "next_review",
		TieBreakerKey: "id",
	},
}
