// Package collector provides an in-memory io.Writer that splits whatever is
// written to it into lines, so tests can assert on what a program logged.
//
// A Collector keeps two pieces of state: the completed lines, in arrival
// order, and the pending fragment written since the last '\n'. Every '\n'
// promotes the pending fragment to a completed line, no matter how the
// bytes were split across Write calls:
//
//	c := collector.New()
//	fmt.Fprint(c, "Partial line")
//	fmt.Fprintln(c, " completed")
//	c.CloneLines() // ["Partial line completed"]
//
// Flush promotes a non-empty pending fragment on demand, and Clear resets the
// collector to its initial empty state.
//
// Input is decoded as UTF-8. Each byte that does not start a valid encoding
// is replaced with U+FFFD, the same substitution range over a string
// performs, and decoding restarts on every Write call. Only '\n' terminates a
// line; a preceding '\r' stays in the line content.
//
// Collector is not safe for concurrent use. Shared wraps one behind a mutex
// for loggers that write from several goroutines. Both types satisfy
// io.Writer, io.StringWriter and zapcore.WriteSyncer.
package collector
