package shell

import (
	"errors"
	"fmt"

	"github.com/mattn/go-shellwords"
)

var errMalformedLine = errors.New("malformed command line")

// splitWords breaks line into words the way a POSIX shell would, without
// expanding variables or backticks.
func splitWords(line string) ([]string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedLine, err)
	}
	return words, nil
}
