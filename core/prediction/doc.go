// Package prediction wraps the linear model behind an engine that evaluates
// single observations or whole batches and reports every evaluation to a
// metrics sink.
package prediction
