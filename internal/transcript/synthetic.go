package transcript

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	authors = []string{"ada", "linus", "grace", "ken", "barbara"}
	words   = strings.Fields(`scroll window spacer measure height render item aperture
		front back reserve screenful layout frame offset anchor bottom top list
		message history page load estimate exact stale prefix search boundary`)
)

// Synthetic builds n deterministic messages of varying length, oldest first.
// Every fifth message is markdown with a bullet list so rendered heights vary.
func Synthetic(n int, seed uint64) []Message {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	out := make([]Message, n)
	for i := range out {
		m := Message{
			ID:     fmt.Sprintf("m%04d", i),
			Author: authors[r.IntN(len(authors))],
			At:     base.Add(time.Duration(i) * time.Minute),
		}
		if i%5 == 4 {
			m.Markdown = true
			m.Body = markdownBody(r, i)
		} else {
			m.Body = sentence(r, 4+r.IntN(40))
		}
		out[i] = m
	}
	return out
}

func sentence(r *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[r.IntN(len(words))]
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func markdownBody(r *rand.Rand, i int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Note %d**\n\n", i)
	for j := 0; j < 1+r.IntN(4); j++ {
		b.WriteString("- ")
		b.WriteString(sentence(r, 3+r.IntN(8)))
		b.WriteString("\n")
	}
	return b.String()
}
