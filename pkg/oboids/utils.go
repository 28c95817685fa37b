/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboids

import "net/url"

func encodeLocal(local string) string {
	return url.QueryEscape(local)
}

func decodeLocal(local string) string {
	if s, err := url.QueryUnescape(local); err == nil {
		return s
	}
	return local
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
