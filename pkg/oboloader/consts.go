/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

const DefaultSize = 64
