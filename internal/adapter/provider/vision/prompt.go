package vision

import "fmt"

// buildPrompt creates the fixed instruction sent along with every photo.
func buildPrompt(language string) string {
	return fmt.Sprintf(`You are a nutrition assistant. Look at the photo of a meal and estimate its total calories.

Respond with ONLY a JSON object in exactly this format:
{"mealName": "<short descriptive name of the meal, written in %s>", "calories": <estimated total calories>}

Rules:
- mealName describes the dish, e.g. "Grilled chicken with rice and salad"
- calories is a single whole number, not a range and not text
- if the plate holds several foods, sum their calories
- output ONLY the JSON, no markdown, no explanations`, language)
}
