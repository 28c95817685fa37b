/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import "strings"

// isShortForm returns true for IRI short forms like BFO_0000050
func isShortForm(name string) bool {
	if strings.Contains(name, ":") {
		return false
	}
	i := strings.LastIndexByte(name, '_')
	if i <= 0 || i == len(name)-1 {
		return false
	}
	for _, r := range name[i+1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
