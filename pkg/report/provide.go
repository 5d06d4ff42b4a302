/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"fmt"
	"strings"

	"github.com/voedger/defpred/pkg/defects"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q, expected one of %s, %s, %s", ErrUnknownFormat, s, FormatText, FormatJSON, FormatMarkdown)
}

func NewChurnSection(ranked []defects.FileScore, top int) Section {
	return Section{Name: SectionChurn, Title: titleChurn, Files: defects.Top(ranked, top)}
}

func NewFixCacheSection(ranked []defects.FileScore, top int) Section {
	return Section{Name: SectionFixCache, Title: titleFixCache, Files: defects.Top(ranked, top)}
}

func NewREPDSection(ranked []defects.FileScore, top int) Section {
	return Section{Name: SectionREPD, Title: titleREPD, Files: defects.Top(ranked, top), EmptyMessage: NotImplementedREPD}
}
