/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

func deleteIf[T any](s []T, del func(T) bool) []T {
	res := s[:0]
	for _, v := range s {
		if !del(v) {
			res = append(res, v)
		}
	}
	var zero T
	for i := len(res); i < len(s); i++ {
		s[i] = zero
	}
	return res
}
