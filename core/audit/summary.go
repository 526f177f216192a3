package audit

import (
	"fmt"
	"strings"
)

// Summary renders the result as a human-readable report: a numbered
// defect list, a numbered warning list, or a single success line when
// the translation is clean.
func (r *Result) Summary() string {
	if len(r.Defects) == 0 && len(r.Warnings) == 0 {
		return fmt.Sprintf("ok: %d books, %d chapters, %d verses",
			r.Stats.Books, r.Stats.Chapters, r.Stats.Verses)
	}

	var b strings.Builder
	if len(r.Defects) > 0 {
		fmt.Fprintf(&b, "%d defect(s):\n", len(r.Defects))
		for i, d := range r.Defects {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, d.Error())
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "%d warning(s):\n", len(r.Warnings))
		for i, w := range r.Warnings {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, w)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
