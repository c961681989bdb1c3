package flatfile

import (
	"context"

	"github.com/incollege/backend/pkg/flatfile"
	"github.com/incollege/backend/pkg/message"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

// MessageRepository implements message.Repository over the messages table.
type MessageRepository struct {
	table *flatfile.Table[message.Chunk]
}

func NewMessageRepository(store *flatdir.Store) *MessageRepository {
	return &MessageRepository{
		table: flatfile.NewTable[message.Chunk](store.Path(messagesFile), message.Codec{}),
	}
}

// Append allocates the next message id by scanning the existing records
// for the current maximum, then appends one chunk per segment. Allocation
// and append run inside the table's critical section; two sends cannot
// compute the same id within this process. Nothing serializes against
// other processes, per the single-writer model.
func (r *MessageRepository) Append(ctx context.Context, out message.Outgoing) error {
	if len(out.Segments) == 0 {
		// An empty message still gets one physical chunk.
		out.Segments = []string{""}
	}
	return r.table.Insert(func(existing []message.Chunk) ([]message.Chunk, error) {
		maxID := 0
		for _, c := range existing {
			if c.ID > maxID {
				maxID = c.ID
			}
		}
		id := maxID + 1
		chunks := make([]message.Chunk, 0, len(out.Segments))
		for _, segment := range out.Segments {
			chunks = append(chunks, message.Chunk{
				ID:        id,
				Sender:    out.Sender,
				Recipient: out.Recipient,
				Timestamp: out.Timestamp,
				Text:      segment,
			})
		}
		return chunks, nil
	})
}

func (r *MessageRepository) Chunks(ctx context.Context) ([]message.Chunk, error) {
	return r.table.ReadAll()
}
