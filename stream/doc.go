// Package stream reads and writes bigint values as whitespace-delimited
// decimal text over io.Reader and io.Writer.
//
// The wire form is exactly the bigint parse/format contract: Decode
// applies bigint.Parse to each token and Encode writes the canonical
// decimal form, so any stream produced by Encode decodes to equal values
// and streams from other producers are accepted under the same leniency
// as bigint.Parse.
package stream
