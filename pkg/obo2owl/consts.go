/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

// Id spaces whose xrefs do not expand typedef shorthands
var legacyRelationPrefixes = []string{"OBO_REL"}
