/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/oboformat/pkg/owl"
)

func sortedKeys(m map[owl.IRI]owl.IRI) []owl.IRI {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
