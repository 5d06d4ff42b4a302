/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

const (
	DefaultRepoURL   = "https://github.com/eclipse-openj9/openj9"
	DefaultRepoPath  = "./openj9_repo"
	DefaultSchedule  = "@every 1h"
	DefaultStoreKeep = 100

	// Picked up from the working directory when --config is not given
	DefaultConfigFile = "defpred.hcl"
)

// environment overrides
const (
	EnvRepoURL   = "DEFPRED_REPO_URL"
	EnvRepoPath  = "DEFPRED_REPO_PATH"
	EnvTop       = "DEFPRED_TOP"
	EnvFormat    = "DEFPRED_FORMAT"
	EnvSeed      = "DEFPRED_SEED"
	EnvStatic    = "DEFPRED_STATIC"
	EnvStorePath = "DEFPRED_STORE_PATH"
	EnvSchedule  = "DEFPRED_SCHEDULE"
)

// variable holding the process environment in config expressions, e.g. env.HOME
const envVariable = "env"
