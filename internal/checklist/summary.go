package checklist

import (
	"fmt"
	"strings"
	"time"
)

// Summary renders the document as a plain-text report suitable for
// pasting into an email. The text is one-way output and is never
// parsed back.
func Summary(doc *Document, now time.Time) string {
	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04"))

	t := doc.Totals(now)
	fmt.Fprintf(&b, "Total: %d, Done: %d, Left: %d, Overdue: %d\n", t.Total, t.Done, t.Left, t.Overdue)

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		b.WriteString("\n")
		b.WriteString(sec.Name)
		b.WriteString("\n")
		for _, it := range sec.Items {
			box := "[ ]"
			if it.Done {
				box = "[x]"
			}
			if it.DueDate != "" {
				fmt.Fprintf(&b, "%s %s (due %s)\n", box, it.Text, it.DueDate)
			} else {
				fmt.Fprintf(&b, "%s %s\n", box, it.Text)
			}
		}
	}
	return b.String()
}
