/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import (
	"fmt"
	"regexp"
)

func NewDefaultParams() Params {
	return Params{
		CacheRatio:   DefaultCacheRatio,
		BlockSize:    DefaultBlockSize,
		PrefetchSize: DefaultPrefetchSize,
		MaxCoChange:  DefaultMaxCoChange,
		FixPattern:   regexp.MustCompile(DefaultFixPattern),
	}
}

func New(params Params) (IPredictor, error) {
	switch {
	case params.CacheSize < 0:
		return nil, fmt.Errorf("%w: negative cache size %d", ErrInvalidParams, params.CacheSize)
	case params.CacheSize == 0 && (params.CacheRatio <= 0 || params.CacheRatio > 1):
		return nil, fmt.Errorf("%w: cache ratio %v must be in (0, 1]", ErrInvalidParams, params.CacheRatio)
	case params.BlockSize < 1:
		return nil, fmt.Errorf("%w: block size %d must be positive", ErrInvalidParams, params.BlockSize)
	case params.PrefetchSize < 0:
		return nil, fmt.Errorf("%w: negative prefetch size %d", ErrInvalidParams, params.PrefetchSize)
	case params.FixPattern == nil:
		return nil, fmt.Errorf("%w: fix pattern is not set", ErrInvalidParams)
	}
	return &predictor{params: params}, nil
}
