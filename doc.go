// Package qnv verifies programs that manipulate entanglement in a
// quantum network: a small imperative language over a fixed topology,
// analyzed not by executing one trace but by exhaustive symbolic
// execution over the distribution of probabilistic outcomes.
//
// The module is organized the way the teacher library organizes itself:
// one focused package per concern, each with testify-based tests.
//
//	topology/      — the fixed graph: node count, link/swap probabilities, saturation caps
//	ast/           — the closed statement/expression node set
//	lexer/         — tokenizer for the source language
//	parser/        — recursive-descent parser building an ast.Program
//	printer/       — AST pretty-printer ("--parse")
//	configuration/ — DConfiguration and PConfiguration: the probabilistic configuration interpreter's core
//	eval/          — pure expression evaluator, one int64 vector per call
//	interp/        — statement interpreter, dispatched by type switch
//	driver/        — builds the initial configuration and drives a program to completion
//	cmd/qnv/       — the CLI binary
//
// The interesting subsystem is configuration/: a probability-weighted
// multiset of deterministic worlds that forks on every probabilistic
// step (entanglement creation, entanglement swap), splits on every
// conditional, and merges only at forget — the single point where the
// state space can shrink back down.
//
//	go get github.com/katalvlaran/qnv
package qnv
