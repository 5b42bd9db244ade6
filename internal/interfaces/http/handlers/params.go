package handlers

import "strconv"

func parseUintQuery(raw string) (uint, bool) {
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

func parseIntQuery(raw string) (int, bool) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
