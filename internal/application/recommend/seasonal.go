package recommend

import "time"

// seasonalIngredients lists produce in season per month (northern
// hemisphere). Used to surface timely suggestions on the home screen.
var seasonalIngredients = map[time.Month][]string{
	time.January:   {"kale", "leek", "citrus", "cabbage"},
	time.February:  {"brussels sprouts", "cauliflower", "blood orange"},
	time.March:     {"asparagus", "spinach", "radish"},
	time.April:     {"artichoke", "peas", "rhubarb"},
	time.May:       {"strawberry", "new potato", "spring onion"},
	time.June:      {"zucchini", "cherry", "basil"},
	time.July:      {"tomato", "corn", "peach"},
	time.August:    {"eggplant", "bell pepper", "melon"},
	time.September: {"fig", "grape", "butternut squash"},
	time.October:   {"pumpkin", "apple", "mushroom"},
	time.November:  {"sweet potato", "cranberry", "parsnip"},
	time.December:  {"chestnut", "pear", "red cabbage"},
}

// SeasonalIngredients returns ingredients typically in season for the
// given month.
func (e *Engine) SeasonalIngredients(month time.Month) []string {
	ingredients := seasonalIngredients[month]
	out := make([]string, len(ingredients))
	copy(out, ingredients)
	return out
}
