package message

import "github.com/incollege/backend/pkg/flatfile"

const (
	// RecordWidth is the encoded width of one chunk record.
	RecordWidth = 262
	// ChunkTextWidth is the most text one chunk carries.
	ChunkTextWidth = 200
	// idWidth is the zero-padded decimal width of the message id field.
	idWidth = 8
)

var schema = flatfile.NewSchema("messageChunk",
	flatfile.Field{Name: "id", Width: idWidth},
	flatfile.Field{Name: "sender", Width: 20},
	flatfile.Field{Name: "recipient", Width: 20},
	flatfile.Field{Name: "timestamp", Width: 14},
	flatfile.Field{Name: "text", Width: ChunkTextWidth},
)

// Codec implements flatfile.Codec for Chunk records. The id is a
// zero-padded decimal rather than a space-padded string. The text field
// decodes raw, padding included: reassembly concatenates chunk texts and
// must trim only once at the end, or a chunk boundary landing on a real
// space would drop characters.
type Codec struct{}

func (Codec) Encode(c Chunk) (string, error) {
	return schema.Encode(flatfile.FormatInt(c.ID, idWidth), c.Sender, c.Recipient, c.Timestamp, c.Text)
}

func (Codec) Decode(line string) Chunk {
	d := schema.NewDecoder(line)
	return Chunk{
		ID:        d.NextInt(),
		Sender:    d.Next(),
		Recipient: d.Next(),
		Timestamp: d.Next(),
		Text:      d.NextRaw(),
	}
}
