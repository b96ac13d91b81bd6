// Package logging provides concrete implementations of the pathname.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes plain lines to stderr (or any io.Writer) with serialized output
//   - ZapLogger: Writes one JSON object per message through go.uber.org/zap
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
