/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/oboformat/pkg/oboloader"
	"github.com/voedger/oboformat/pkg/xrefexp"
)

func defaultConfig() config {
	return config{
		Loader: loaderConfig{CacheSize: oboloader.DefaultSize},
		Xrefs:  xrefsConfig{BridgePrefix: xrefexp.DefaultBridgePrefix},
	}
}

func initGlobalFlags(cmd *cobra.Command, params *toolParams) {
	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&params.ConfigFile, flagConfig, "", "path to yaml config file, "+defaultConfigFileName+" is used if exists")
	cmd.Flags().BoolVar(&params.FollowImports, flagFollowImports, false, "parse local imports")
	cmd.Flags().StringVarP(&params.Output, flagOutput, "o", "", "output file, stdout if empty")
}

// loadConfig reads the config file, then applies .env and environment overrides, then flags
func loadConfig(cmd *cobra.Command, params toolParams) (config, error) {
	cfg := defaultConfig()

	path, required := params.ConfigFile, true
	if path == "" {
		path, required = defaultConfigFileName, false
	}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, ErrInvalidConfig(path, err)
		}
		if logger.IsVerbose() {
			logger.Verbose("config read from", path)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return cfg, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, ErrInvalidConfig(".env", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed(flagFollowImports) {
		cfg.Loader.FollowImports = params.FollowImports
	}
	return cfg, nil
}

func applyEnv(cfg *config) error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ErrInvalidConfig(envPrefix+name, err)
		}
		*dst = b
		return nil
	}

	str(envDefaultOntologyID, &cfg.Convert.DefaultOntologyID)
	str(envBridgePrefix, &cfg.Xrefs.BridgePrefix)
	if v, ok := os.LookupEnv(envPrefix + envCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ErrInvalidConfig(envPrefix+envCacheSize, err)
		}
		cfg.Loader.CacheSize = n
	}
	return errors.Join(
		boolean(envFollowImports, &cfg.Loader.FollowImports),
		boolean(envStrict, &cfg.Convert.Strict),
		boolean(envMute, &cfg.Convert.MuteUntranslatable),
		boolean(envNoNameComments, &cfg.Writer.NoNameComments),
	)
}

func newLoader(cfg config) (*oboloader.Loader, error) {
	return oboloader.New(oboloader.Options{Size: cfg.Loader.CacheSize, FollowImports: cfg.Loader.FollowImports})
}
