package weather

// extractRainfall normalizes the provider's rain fields into an hourly
// amount plus a raining flag. Condition codes 2xx-5xx (thunderstorm,
// drizzle, rain) mean it is raining. When the code says rain but no amount
// was measured, 0.1mm is reported so "currently raining" never comes with
// zero intensity.
func extractRainfall(conditionID int, rain rainPayload, precipitation *float64) (float64, bool) {
	isRaining := conditionID >= 200 && conditionID < 600

	var amount float64
	switch {
	case rain.OneHour != nil:
		amount = *rain.OneHour
	case rain.ThreeHour != nil:
		amount = *rain.ThreeHour / 3 // hourly rate
	case rain.Raw != nil:
		amount = *rain.Raw
	case precipitation != nil:
		amount = *precipitation
	}

	if isRaining && amount == 0 {
		amount = 0.1
	}
	return amount, isRaining
}
