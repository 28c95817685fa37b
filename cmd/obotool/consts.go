/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

const (
	defaultConfigFileName = "obotool.yaml"
	envPrefix             = "OBOTOOL_"
	defaultPermissions    = 0o644
	defaultDirPermissions = 0o755
	oboExt                = ".obo"
	gciSuffix             = "-gci"
)

// Environment variables, without envPrefix
const (
	envDefaultOntologyID = "DEFAULT_ONTOLOGY_ID"
	envFollowImports     = "FOLLOW_IMPORTS"
	envCacheSize         = "CACHE_SIZE"
	envStrict            = "STRICT"
	envMute              = "MUTE_UNTRANSLATABLE"
	envNoNameComments    = "NO_NAME_COMMENTS"
	envBridgePrefix      = "BRIDGE_PREFIX"
)

// Flags shared by commands
const (
	flagConfig        = "config"
	flagFollowImports = "follow-imports"
	flagOutput        = "output"
	flagBridgePrefix  = "bridge-prefix"
	flagStrict        = "strict"
	flagMute          = "mute"
)

// Functional syntax file extensions accepted by convert
var owlExts = []string{".ofn", ".owl", ".fss"}
