// Package hdlscan counts block instantiations in a generated crossbar file.
//
// The grammar recognizes `localparam NAME = <number>;` and
// `<module> <instance> ( .port(expr), ... );` and skips every other token.
// It is a counting aid for generated files, not a Verilog parser.
package hdlscan
