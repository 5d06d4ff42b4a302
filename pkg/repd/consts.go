/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package repd

var DefaultExtensions = []string{".py", ".c", ".cpp", ".h", ".java", ".js", ".go"}
