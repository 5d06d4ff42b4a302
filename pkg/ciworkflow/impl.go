/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package ciworkflow

import (
	"os"

	"golang.org/x/exp/slices"
)

func NewDefaultTriggers() Triggers {
	return Triggers{
		Branches:     []string{DefaultBranch},
		PullRequests: true,
	}
}

// DetectEvent reads the event from the process environment
func DetectEvent() Event {
	return EventFromEnv(os.LookupEnv)
}

func EventFromEnv(lookup func(key string) (string, bool)) Event {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	if get(EnvActions) != "true" {
		return Event{}
	}
	return Event{
		CI:          true,
		Name:        get(EnvEventName),
		Branch:      get(EnvRefName),
		BaseRef:     get(EnvBaseRef),
		HeadRef:     get(EnvHeadRef),
		SHA:         get(EnvSHA),
		StepSummary: get(EnvStepSummary),
	}
}

// ShouldRun tells if the analysis must run for the event.
// Always true outside CI
func ShouldRun(e Event, t Triggers) bool {
	if !e.CI {
		return true
	}
	switch e.Name {
	case EventPush:
		return slices.Contains(t.Branches, e.Branch)
	case EventPullRequest, EventPullRequestTarget:
		return t.PullRequests
	}
	return false
}
