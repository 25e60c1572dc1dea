package measure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldsPerLine is the exact number of whitespace-separated fields a
// measurement line must hold: vertex, diameter, height, measured value.
const fieldsPerLine = 4

// Parse converts one measurement-file line into an ObservedMeasurement.
//
// The line must tokenize into exactly four fields; anything else — wrong
// field count, unknown vertex name, unparsable number, or an out-of-domain
// diameter/height — is reported as ErrInvalidMeasurement wrapped with the
// offending line, producing the contract message
// "invalid measurement: <line>".
func Parse(line string) (ObservedMeasurement, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerLine {
		return ObservedMeasurement{}, invalid(line)
	}

	top, err := ParseVertex(fields[0])
	if err != nil {
		return ObservedMeasurement{}, invalid(line)
	}

	var values [fieldsPerLine - 1]float64
	for i, field := range fields[1:] {
		v, convErr := strconv.ParseFloat(field, 64)
		if convErr != nil {
			return ObservedMeasurement{}, invalid(line)
		}
		values[i] = v
	}

	obs, err := New(top, values[0], values[1], values[2])
	if err != nil {
		return ObservedMeasurement{}, invalid(line)
	}
	return obs, nil
}

// Read parses a whole measurement file into an ordered observation list,
// preserving line order. It stops at the first malformed line and returns
// its ErrInvalidMeasurement; I/O failures from the underlying reader are
// returned as-is.
func Read(r io.Reader) ([]ObservedMeasurement, error) {
	var observed []ObservedMeasurement
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		obs, err := Parse(scanner.Text())
		if err != nil {
			return nil, err
		}
		observed = append(observed, obs)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return observed, nil
}

// invalid wraps ErrInvalidMeasurement with the offending line, keeping the
// sentinel matchable via errors.Is while producing the exact contract text.
func invalid(line string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMeasurement, line)
}
