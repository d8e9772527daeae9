/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package cbst

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNegativeSize    = errors.New("union-find size must be >= 0")
	errIndexOutOfRange = errors.New("index out of range")
	errEmptySequence   = errors.New("sequence is empty")
	errSelfLoop        = errors.New("edge endpoints must differ")
)

// IsInvalidInput reports whether err denotes malformed input data,
// as opposed to a normal infeasible-search result.
func IsInvalidInput(err error) bool {
	return err != nil && strings.Contains(err.Error(), "invalid input")
}

// NewInvalidInputError builds the InvalidInput error kind (spec §7) for
// loaders outside this package, e.g. the JSON/YAML instance reader.
func NewInvalidInputError(format string, args ...any) error {
	return &InvalidInputError{msg: fmt.Sprintf(format, args...)}
}

// InvalidInputError marks a fatal, loader-level data problem: malformed
// documents, non-contiguous node ids, or invariant violations caught at
// the boundary rather than inside a solver.
type InvalidInputError struct {
	msg string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.msg
}
