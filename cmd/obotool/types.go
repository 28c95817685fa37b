/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

// toolParams are command line params common to all commands
type toolParams struct {
	ConfigFile    string
	FollowImports bool
	Output        string
}

// config is read from obotool.yaml and overridden by OBOTOOL_* environment variables and flags
type config struct {
	Loader  loaderConfig  `yaml:"loader"`
	Convert convertConfig `yaml:"convert"`
	Writer  writerConfig  `yaml:"writer"`
	Macros  macrosConfig  `yaml:"macros"`
	Xrefs   xrefsConfig   `yaml:"xrefs"`
}

type loaderConfig struct {
	FollowImports bool `yaml:"followImports"`
	CacheSize     int  `yaml:"cacheSize"`
}

type convertConfig struct {
	DefaultOntologyID  string `yaml:"defaultOntologyId"`
	Strict             bool   `yaml:"strict"`
	MuteUntranslatable bool   `yaml:"muteUntranslatable"`
}

type writerConfig struct {
	NoNameComments bool `yaml:"noNameComments"`
}

type macrosConfig struct {
	PreserveAnnotations bool `yaml:"preserveAnnotations"`
	AddExpansionMarker  bool `yaml:"addExpansionMarker"`
}

type xrefsConfig struct {
	BridgePrefix string `yaml:"bridgePrefix"`
}
