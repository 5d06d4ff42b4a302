/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package ciworkflow

const (
	EnvActions     = "GITHUB_ACTIONS"
	EnvEventName   = "GITHUB_EVENT_NAME"
	EnvRefName     = "GITHUB_REF_NAME"
	EnvBaseRef     = "GITHUB_BASE_REF"
	EnvHeadRef     = "GITHUB_HEAD_REF"
	EnvSHA         = "GITHUB_SHA"
	EnvStepSummary = "GITHUB_STEP_SUMMARY"
)

const (
	EventPush              = "push"
	EventPullRequest       = "pull_request"
	EventPullRequestTarget = "pull_request_target"
)

const DefaultBranch = "master"
