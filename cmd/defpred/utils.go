/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/voedger/defpred/pkg/config"
	"github.com/voedger/defpred/pkg/goutils/filesu"
	"github.com/voedger/defpred/pkg/goutils/timeu"
	"github.com/voedger/defpred/pkg/runstore"
)

// loadConfig loads the file given by --config, or the default config file if it exists
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	if len(path) == 0 {
		exists, err := filesu.Exists(config.DefaultConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if exists {
			path = config.DefaultConfigFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, errors.Annotate(err, "failed to load config")
	}
	return cfg, nil
}

func openStore(cfg config.Config) (runstore.IRunStore, error) {
	if !cfg.Store.Enabled {
		return nil, ErrStoreDisabled
	}
	s, err := runstore.Open(runstore.Params{Path: cfg.Store.Path, Timeout: runstore.DefaultTimeout}, timeu.NewITime())
	if err != nil {
		return nil, errors.Annotate(err, "failed to open run store")
	}
	return s, nil
}

func shortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}
