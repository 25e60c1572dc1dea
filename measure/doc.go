// Package measure defines observed measurements of a prismatic rule and the
// plain-text measurement-file format that produces them.
//
// Overview:
//
//   - A measurement is taken by resting two gauge pins of diameter d on
//     spacer blocks of height h, one against each slanted face of the rule,
//     and measuring the distance m over the pins. The Vertex names the rule
//     corner opposite the face the pins rest on (the "top" vertex).
//   - ObservedMeasurement is an immutable record (Top, D, H, M) built once
//     when the file is parsed and never mutated afterwards; the fit owns the
//     observation list for its whole run.
//
// File format:
//
//	One measurement per line, exactly four whitespace-separated fields:
//
//	    <vertex> <pin diameter> <spacer height> <measured value>
//	    A1 12.0 0.0 47.281
//	    A3 20.0 3.7 47.304
//
//	Any line that does not tokenize into four valid fields is rejected with
//	the error message "invalid measurement: <line>".
//
// Errors (sentinel):
//
//   - ErrInvalidMeasurement if a line does not hold exactly four parsable
//     fields. The message carries no package prefix: it is an external
//     contract shared with the command-line tool.
//   - ErrUnknownVertex      if a vertex name is not one of A1, A2, A3.
//   - ErrBadDiameter        if a pin diameter is not strictly positive.
//   - ErrBadHeight          if a spacer height is negative.
//
// Example usage:
//
//	observed, err := measure.Read(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("read %d measurements\n", len(observed))
package measure
