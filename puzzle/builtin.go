package puzzle

// Builtin returns the demo decks available without any deck directory
func Builtin() []Deck {
	return []Deck{
		{
			Name: "Translator demo",
			Puzzles: []Puzzle{{
				Kind:    KindTranslator,
				Prompt:  "How is the weather today?",
				Answers: []string{"今天天气怎么样？", "今天天气怎样？"},
				Parts:   []string{"今", "天", "天", "气", "怎", "么", "样", "？", "明", "田", "七"},
			}},
		},
		{
			Name: "Word order demo",
			Puzzles: []Puzzle{{
				Kind:    KindWordOrder,
				Answers: []string{"你都不带脑子来上课吗？"},
				Parts:   []string{"你", "都", "不", "带", "脑子", "来", "上课", "吗", "？"},
			}},
		},
	}
}
