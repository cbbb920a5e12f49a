// Package report provides sinks for the per-generation genetic.Summary
// records produced by genetic.Engine.
//
// Every sink implements genetic.Reporter and may be combined with Multi:
//
//   - Text    - a human-readable block per generation on any io.Writer.
//   - Log     - one structured log/slog record per generation.
//   - Metrics - Prometheus gauges and a counter on a caller-owned registry;
//     WriteTextfile dumps a registry for the node-exporter textfile
//     collector.
//   - History - a SQLite run log (runs + generations tables) that survives
//     the process and can be queried back with Generations.
//
// Sinks are driven from the Engine's single goroutine and are not
// required to be safe for concurrent use, except where noted.
package report
