package message

import (
	"fmt"
	"strings"
	"time"
)

// SplitText cuts text into consecutive segments of at most ChunkTextWidth
// characters. Empty text still yields one empty segment so every logical
// message has a physical record.
func SplitText(text string) []string {
	if text == "" {
		return []string{""}
	}
	var segments []string
	for len(text) > ChunkTextWidth {
		segments = append(segments, text[:ChunkTextWidth])
		text = text[ChunkTextWidth:]
	}
	return append(segments, text)
}

// Reassemble groups chunks by id, preserving first-seen order, and
// concatenates each group's raw text in file order. The concatenation is
// trimmed only once at the end so nothing is lost at chunk boundaries.
// Sender, recipient, and timestamp are identical across a group by
// construction and are taken from its first chunk.
func Reassemble(chunks []Chunk) []Message {
	var order []int
	texts := map[int]*strings.Builder{}
	heads := map[int]Chunk{}
	for _, c := range chunks {
		b, ok := texts[c.ID]
		if !ok {
			b = &strings.Builder{}
			texts[c.ID] = b
			heads[c.ID] = c
			order = append(order, c.ID)
		}
		b.WriteString(c.Text)
	}

	messages := make([]Message, 0, len(order))
	for _, id := range order {
		head := heads[id]
		text := strings.TrimRight(texts[id].String(), " ")
		messages = append(messages, Message{
			ID:               id,
			Sender:           head.Sender,
			Recipient:        head.Recipient,
			Timestamp:        head.Timestamp,
			DisplayTimestamp: DisplayTimestamp(head.Timestamp),
			Text:             text,
		})
	}
	return messages
}

// CompactTimestamp renders t in the record form YYYYMMDDHHMMSS.
func CompactTimestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// DisplayTimestamp converts the 14-digit compact form to
// "YYYY/MM/DD HH:MM:SS". Anything that is not exactly 14 characters is
// returned unchanged.
func DisplayTimestamp(ts string) string {
	if len(ts) != 14 {
		return ts
	}
	return fmt.Sprintf("%s/%s/%s %s:%s:%s",
		ts[0:4], ts[4:6], ts[6:8], ts[8:10], ts[10:12], ts[12:14])
}
