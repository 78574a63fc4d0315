package domain

// Estimate is the structured result extracted from a vision model response.
type Estimate struct {
	MealName string
	Calories int
}

// Progress summarizes the day's intake against the daily goal.
type Progress struct {
	TotalCalories  int
	DailyGoal      int
	Percent        float64
	Remaining      int
	MealCount      int
	EstimatedCount int
}

// ComputeProgress derives the day's progress from the ledger. A nil
// profile falls back to DefaultDailyGoal. Percent is capped at 100 and
// Remaining never goes below zero.
func ComputeProgress(meals []MealEntry, profile *Profile) Progress {
	p := Progress{
		DailyGoal: GoalOf(profile),
		MealCount: len(meals),
	}

	for _, m := range meals {
		p.TotalCalories += m.Calories
		if m.Source == SourceAIEstimated {
			p.EstimatedCount++
		}
	}

	p.Percent = min(float64(p.TotalCalories)/float64(p.DailyGoal)*100, 100)
	p.Remaining = max(p.DailyGoal-p.TotalCalories, 0)

	return p
}
