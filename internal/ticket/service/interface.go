// Package service provides the ticket generation primitives: random token
// drawing with duplicate avoidance and CSV serialization of accepted tokens.
package service

// TokenGenerator defines the interface for drawing one new unique token.
type TokenGenerator interface {
	// Generate draws a token of the given length whose characters come from the
	// generator's alphabet and which is not present in alreadyGenerated.
	Generate(alreadyGenerated map[string]struct{}, length int) (string, error)
}

// TicketWriter defines the interface for serializing accepted tokens, one
// record per token.
type TicketWriter interface {
	// Write appends one token as a single-field record.
	Write(token string) error
	// Close flushes buffered records and releases the underlying destination.
	Close() error
}
