/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package repd

import (
	"path"

	"golang.org/x/exp/slices"

	"github.com/voedger/defpred/pkg/defects"
)

func (m *model) Predict(files []string) defects.Scores {
	code := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := m.extensions[path.Ext(f)]; ok {
			code = append(code, f)
		}
	}
	// same seed and same files give same scores regardless of the walk order
	slices.Sort(code)

	raw := make(map[string]float64, len(code))
	for _, f := range code {
		raw[f] = m.rnd.Float64()
	}
	return defects.Normalize(raw)
}
