package network

import "github.com/incollege/backend/pkg/flatfile"

// PairRecordWidth is the encoded width of connection and pending-request
// records; both are a pair of 20-byte username fields.
const PairRecordWidth = 40

var connectionSchema = flatfile.NewSchema("connection",
	flatfile.Field{Name: "userA", Width: 20},
	flatfile.Field{Name: "userB", Width: 20},
)

var pendingSchema = flatfile.NewSchema("pendingRequest",
	flatfile.Field{Name: "sender", Width: 20},
	flatfile.Field{Name: "recipient", Width: 20},
)

// ConnectionCodec implements flatfile.Codec for Connection records.
type ConnectionCodec struct{}

func (ConnectionCodec) Encode(c Connection) (string, error) {
	return connectionSchema.Encode(c.UserA, c.UserB)
}

func (ConnectionCodec) Decode(line string) Connection {
	d := connectionSchema.NewDecoder(line)
	return Connection{UserA: d.Next(), UserB: d.Next()}
}

// PendingCodec implements flatfile.Codec for PendingRequest records.
type PendingCodec struct{}

func (PendingCodec) Encode(pr PendingRequest) (string, error) {
	return pendingSchema.Encode(pr.Sender, pr.Recipient)
}

func (PendingCodec) Decode(line string) PendingRequest {
	d := pendingSchema.NewDecoder(line)
	return PendingRequest{Sender: d.Next(), Recipient: d.Next()}
}
