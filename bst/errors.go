// Copyright 2023 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bst

import "github.com/pkg/errors"

var (
	// ErrAllocation is returned when the free list of a tree cannot hand out
	// another node.
	ErrAllocation = errors.New("bst: node allocation failed")

	// ErrValueConstruction is matched by every *ConstructionError.
	ErrValueConstruction = errors.New("bst: value construction failed")
)

// ConstructionError records a failure of the constructor passed to Emplace.
type ConstructionError struct {
	Err error
}

func (e *ConstructionError) Error() string {
	return ErrValueConstruction.Error() + ": " + e.Err.Error()
}

// Unwrap returns the error of the failed constructor.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValueConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrValueConstruction
}
