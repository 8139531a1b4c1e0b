package utils

import "strconv"

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

func StrToUint(str string, defaultValue uint) uint {
	result, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return defaultValue
	}
	return uint(result)
}

func StrToFloat(str string, defaultValue float64) float64 {
	result, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return defaultValue
	}
	return result
}
