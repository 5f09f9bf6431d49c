package model

import "fmt"

// OneHotEncoder holds the category vocabulary fixed at training time. The
// order of Columns and of each category group is the wire contract with the
// trained models: Transform emits the dense blocks in exactly that order.
type OneHotEncoder struct {
	Columns    []string   `json:"columns"`
	Categories [][]string `json:"categories"`
}

// Transform one-hot encodes a row of categorical values into a dense vector.
// A value absent from its column's category list encodes as an all-zero block
// rather than an error, matching the training-time unknown-handling.
func (e *OneHotEncoder) Transform(values []string) ([]float64, error) {
	if len(values) != len(e.Categories) {
		return nil, fmt.Errorf("encoder expects %d values, got %d", len(e.Categories), len(values))
	}

	size := 0
	for _, group := range e.Categories {
		size += len(group)
	}

	encoded := make([]float64, size)
	offset := 0
	for i, group := range e.Categories {
		for j, category := range group {
			if values[i] == category {
				encoded[offset+j] = 1
				break
			}
		}
		offset += len(group)
	}
	return encoded, nil
}

// Width is the length of the encoded block.
func (e *OneHotEncoder) Width() int {
	size := 0
	for _, group := range e.Categories {
		size += len(group)
	}
	return size
}
