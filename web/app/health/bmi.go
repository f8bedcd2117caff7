package health

import "strconv"

// BMI is weight in kilograms over squared height in meters. A zero or
// non-numeric height yields Inf/NaN, which is displayed as-is rather
// than masked.
func BMI(weightKG, heightCM float64) float64 {
	heightM := heightCM / 100
	return weightKG / (heightM * heightM)
}

// BMICategory classifies a BMI value. Boundaries are inclusive-low:
// 18.5 is already normal weight, 25.0 already overweight.
type BMICategory struct {
	Name  string
	Color string
}

func CategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{Name: "Abaixo do peso", Color: "text-blue-400"}
	case bmi < 25:
		return BMICategory{Name: "Peso normal", Color: "text-green-400"}
	case bmi < 30:
		return BMICategory{Name: "Sobrepeso", Color: "text-yellow-400"}
	default:
		return BMICategory{Name: "Obesidade", Color: "text-red-400"}
	}
}

// FormatBMI renders one decimal place; NaN prints as "NaN".
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}
