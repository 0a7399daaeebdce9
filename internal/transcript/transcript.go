package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// Message is one entry of a chat-like transcript.
type Message struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Body     string    `json:"body"`
	Markdown bool      `json:"markdown,omitempty"`
	At       time.Time `json:"at"`
}

// LoadJSONL reads one JSON message per line. Blank lines are skipped.
func LoadJSONL(r io.Reader) ([]Message, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []Message
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var m Message
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("transcript line %d: %w", line, err)
		}
		if m.ID == "" {
			m.ID = fmt.Sprintf("L%d", line)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return out, nil
}

// LoadFile opens path and reads it with LoadJSONL.
func LoadFile(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return LoadJSONL(f)
}

// Feed serves a transcript newest first: index 0 is the most recent message,
// which a flipped list draws at the bottom.
type Feed struct {
	msgs []Message
}

// NewFeed orders msgs by time, newest first. Messages with equal times keep
// their reverse file order.
func NewFeed(msgs []Message) *Feed {
	cp := make([]Message, len(msgs))
	for i, m := range msgs {
		cp[len(msgs)-1-i] = m
	}
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].At.After(cp[j].At) })
	return &Feed{msgs: cp}
}

// Len returns the total number of messages.
func (f *Feed) Len() int { return len(f.msgs) }

// Page returns up to limit messages starting at offset and whether more
// messages follow.
func (f *Feed) Page(offset, limit int) ([]Message, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(f.msgs) || limit <= 0 {
		return nil, offset < len(f.msgs)
	}
	end := min(offset+limit, len(f.msgs))
	page := make([]Message, end-offset)
	copy(page, f.msgs[offset:end])
	return page, end < len(f.msgs)
}
