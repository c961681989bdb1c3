package message

import "context"

// Chunk is one physical record: at most ChunkTextWidth characters of a
// logical message's text. A message spanning several chunks repeats the
// same id, sender, recipient, and timestamp on each.
type Chunk struct {
	ID        int
	Sender    string
	Recipient string
	Timestamp string // compact YYYYMMDDHHMMSS
	Text      string
}

// Message is one logical message, reassembled from its chunks.
type Message struct {
	ID               int    `json:"id"`
	Sender           string `json:"sender"`
	Recipient        string `json:"recipient"`
	Timestamp        string `json:"timestamp"`
	DisplayTimestamp string `json:"displayTimestamp"`
	Text             string `json:"text"`
}

// Outgoing is one message to persist: the text has already been split into
// chunk-sized segments sharing a send timestamp. The repository assigns
// the id.
type Outgoing struct {
	Sender    string
	Recipient string
	Timestamp string
	Segments  []string
}

// Repository is the persistence port for message chunks.
type Repository interface {
	// Append allocates the next id (max existing + 1, or 1 for an empty
	// table) and appends one chunk per segment; allocation and append are
	// a single atomic step.
	Append(ctx context.Context, out Outgoing) error
	// Chunks returns every chunk record in file order.
	Chunks(ctx context.Context) ([]Chunk, error)
}
