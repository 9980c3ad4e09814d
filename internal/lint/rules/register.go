package rules

import "sgstyle/internal/lint"

func init() {
	lint.Register(maxBlankLines{})
	lint.Register(lineLength{})
	lint.Register(unicodeNorm{})
	lint.Register(importOrder{})
}
