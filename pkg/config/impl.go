/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

func load(path string, environ []string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if len(path) > 0 {
		if err := cfg.applyFile(path, environ); err != nil {
			return cfg, err
		}
		logger.Verbose("config loaded from", path)
	}
	if err := cfg.applyEnv(lookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyFile(path string, environ []string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(environ), &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	setIfNotNil(&c.Schedule, root.Schedule)
	if b := root.Repository; b != nil {
		setIfNotNil(&c.Repository.URL, b.URL)
		setIfNotNil(&c.Repository.Path, b.Path)
		setIfNotNil(&c.Repository.Fetch, b.Fetch)
	}
	if b := root.Report; b != nil {
		setIfNotNil(&c.Report.Top, b.Top)
		setIfNotNil(&c.Report.Compare, b.Compare)
		if b.Format != nil {
			c.Report.Format = report.Format(*b.Format)
		}
	}
	if b := root.FixCache; b != nil {
		p := &c.FixCache.Params
		setIfNotNil(&c.FixCache.Enabled, b.Enabled)
		setIfNotNil(&p.CacheSize, b.CacheSize)
		setIfNotNil(&p.CacheRatio, b.CacheRatio)
		setIfNotNil(&p.BlockSize, b.BlockSize)
		setIfNotNil(&p.PrefetchSize, b.PrefetchSize)
		setIfNotNil(&p.MaxCoChange, b.MaxCoChange)
		if b.FixPattern != nil {
			rx, err := regexp.Compile(*b.FixPattern)
			if err != nil {
				return fmt.Errorf("%w: fixcache.fix_pattern: %w", ErrInvalidConfig, err)
			}
			p.FixPattern = rx
		}
	}
	if b := root.REPD; b != nil {
		setIfNotNil(&c.REPD.Enabled, b.Enabled)
		setIfNotNil(&c.REPD.Params.Seed, b.Seed)
		if b.Extensions != nil {
			c.REPD.Params.Extensions = b.Extensions
		}
	}
	if b := root.Static; b != nil {
		setIfNotNil(&c.Static.Enabled, b.Enabled)
		setIfNotNil(&c.Static.Parallelism, b.Parallelism)
		if len(b.Analyzers) > 0 {
			c.Static.Analyzers = make([]staticanalysis.AnalyzerConfig, 0, len(b.Analyzers))
			for _, a := range b.Analyzers {
				c.Static.Analyzers = append(c.Static.Analyzers, a.analyzerConfig())
			}
		}
	}
	if b := root.Store; b != nil {
		setIfNotNil(&c.Store.Enabled, b.Enabled)
		setIfNotNil(&c.Store.Path, b.Path)
		setIfNotNil(&c.Store.Keep, b.Keep)
	}
	if b := root.CI; b != nil {
		setIfNotNil(&c.CI.PullRequests, b.PullRequests)
		if b.Branches != nil {
			c.CI.Branches = b.Branches
		}
	}
	return nil
}

// analyzerConfig overrides the built-in config of the analyzer with the same name
func (b *analyzerBlock) analyzerConfig() staticanalysis.AnalyzerConfig {
	res := staticanalysis.DefaultAnalyzerConfig(b.Name)
	setIfNotNil(&res.Command, b.Command)
	if b.Args != nil {
		res.Args = b.Args
	}
	if b.Extensions != nil {
		res.Extensions = b.Extensions
	}
	if b.Exclude != nil {
		res.Exclude = b.Exclude
	}
	return res
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvRepoURL); ok {
		c.Repository.URL = v
	}
	if v, ok := lookupEnv(EnvRepoPath); ok {
		c.Repository.Path = v
	}
	if v, ok := lookupEnv(EnvFormat); ok {
		c.Report.Format = report.Format(v)
	}
	if v, ok := lookupEnv(EnvStorePath); ok {
		c.Store.Path = v
	}
	if v, ok := lookupEnv(EnvSchedule); ok {
		c.Schedule = v
	}
	if v, ok := lookupEnv(EnvTop); ok {
		top, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidEnv, EnvTop, err)
		}
		c.Report.Top = top
	}
	if v, ok := lookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidEnv, EnvSeed, err)
		}
		c.REPD.Params.Seed = seed
	}
	if v, ok := lookupEnv(EnvStatic); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidEnv, EnvStatic, err)
		}
		c.Static.Enabled = enabled
	}
	return nil
}

// Validate checks settings that are not validated by the components themselves
func (c *Config) Validate() error {
	if len(c.Repository.URL) == 0 && len(c.Repository.Path) == 0 {
		return fmt.Errorf("%w: repository url or path must be set", ErrInvalidConfig)
	}
	if c.Report.Top < 1 {
		return fmt.Errorf("%w: report top must be positive, got %d", ErrInvalidConfig, c.Report.Top)
	}
	format, err := report.ParseFormat(string(c.Report.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.Report.Format = format
	if c.Store.Enabled && len(c.Store.Path) == 0 {
		return fmt.Errorf("%w: store path must be set", ErrInvalidConfig)
	}
	if c.Store.Keep < 0 {
		return fmt.Errorf("%w: negative store keep %d", ErrInvalidConfig, c.Store.Keep)
	}
	for _, a := range c.Static.Analyzers {
		if _, err := staticanalysis.NewAnalyzer(a); err != nil {
			return fmt.Errorf("%w: analyzer %q: %w", ErrInvalidConfig, a.Name, err)
		}
	}
	return nil
}

func evalContext(environ []string) *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && len(k) > 0 {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			envVariable: cty.ObjectVal(env),
		},
	}
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
