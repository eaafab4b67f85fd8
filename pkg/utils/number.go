package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Average retorna a média de values ou 0 quando não há valores
func Average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(sum / float64(count))
}

// Percentage retorna part/total em porcentagem, 0 quando total é 0
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
