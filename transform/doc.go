// Package transform defines the contract shared by the series
// transformers in this module and a sequential pipeline for composing
// them.
//
// A Transformer maps one series to another without mutating its input.
// Transformers that also accept panels implement PanelTransformer and
// transform each instance independently. Tags describes what a
// transformer consumes and produces, whether Fit carries state, and
// which filtering backends it needs.
package transform
