package quiz

// DefaultTitle and DefaultIntro describe the built-in DAX quiz.
const (
	DefaultTitle = "DAX Quiz: SUM vs SUMX"
	DefaultIntro = "Test your understanding of when to use **SUM** and when to use **SUMX**. " +
		"Select the best answer for each question and then check your score."
)

// DAXQuestions returns the built-in SUM vs SUMX questions.
func DAXQuestions() []Question {
	return []Question{
		{
			ID:    1,
			Title: "Total manhours × cost per hr",
			Description: "We have a table **Sales** with columns:\n\n" +
				"- `Orders[ManHrs]`\n" +
				"- `WorkCenter[Cost/Hr]`\n\n" +
				"There is **no** `Orders[ManHrsTotal]` column.\n" +
				"We want: **Total Cost = Σ (ManHrs × Cost/Hr)**.\n" +
				"Which measure is correct?",
			Options: []string{
				"Total Cost = SUM ( Orders[ManHrs] * WorkCenter[CostHrs] )",
				"Total Cost = SUMX ( Orders, Orders[ManHrs] * WorkCenter[Cost/Hr] )",
			},
			Correct: 1,
			Explanations: []string{
				"❌ `SUM` cannot iterate row by row over an expression that multiplies two columns.",
				"✅ Correct. `SUMX` iterates each row and evaluates `ManHrs * Cost/Hr` per row.",
			},
		},
		{
			ID:    2,
			Title: "Summing an Existing Total Column",
			Description: "We have a table **Sales** with columns:\n\n" +
				"- `Orders[ManHrs]`\n" +
				"- `WorkCenters[Cost/Hr]`\n" +
				"- `Orders[ManHrsTotal]` = ManHrs × Cost/Hr (already computed in source/Power Query)\n\n" +
				"We want the grand total of `Orders[ManHrsTotal]`.\n" +
				"Which is the most appropriate measure?",
			Options: []string{
				"Total Cost = SUM ( Orders[ManHrsTotal] )",
				"Total Cost = SUMX ( Orders, Orders[ManHrsTotal] )",
			},
			Correct: 0,
			Explanations: []string{
				"✅ Correct. `SUM` is enough when you are just aggregating one numeric column.",
				"ℹ️ This works, but `SUMX` is unnecessary overhead here.",
			},
		},
		{
			ID:    3,
			Title: "Weighted Average Using SUMX",
			Description: "We have a table **Grades**:\n\n" +
				"- `Grades[Score]`\n" +
				"- `Grades[Weight]`\n\n" +
				"We want the weighted average:\n" +
				"**Σ(Score × Weight) ÷ Σ(Weight)**.\n" +
				"Which measure correctly uses `SUMX`?",
			Options: []string{
				"Weighted Average = SUM( Grades[Score] * Grades[Weight] ) / SUM( Grades[Weight] )",
				"Weighted Average = SUMX( Grades, Grades[Score] * Grades[Weight] ) / SUM( Grades[Weight] )",
			},
			Correct: 1,
			Explanations: []string{
				"❌ Wrong. `SUM` cannot correctly evaluate `Score * Weight` row by row.",
				"✅ Correct. `SUMX` iterates each row to compute `Score * Weight`.",
			},
		},
	}
}

// Default returns the built-in DAX question set.
func Default() (*QuestionSet, error) {
	return NewQuestionSet(DefaultTitle, DefaultIntro, DAXQuestions())
}
