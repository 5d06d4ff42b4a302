/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import "github.com/voedger/defpred/pkg/config"

const (
	flagConfig   = "config"
	flagRepoURL  = "repo-url"
	flagRepoPath = "repo-path"
	flagTop      = "top"
	flagFormat   = "format"
	flagCI       = "ci"
	flagNoStatic = "no-static"
	flagNoStore  = "no-store"
	flagSeed     = "seed"
	flagSchedule = "schedule"
	flagLimit    = "limit"
)

const defaultConfigFileHint = config.DefaultConfigFile

const defaultRunsLimit = 20

// short form of commit hashes in listings
const shortHashLen = 12
