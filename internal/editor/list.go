// Package editor holds the admin-side editing operations: list reordering,
// per-section drafts and the operator-facing save messages.
package editor

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Move returns a copy of items with the element at from relocated to to.
// Elements in between shift by one; items itself is never modified.
func Move[T any](items []T, from, to int) ([]T, error) {
	out := append([]T(nil), items...)
	if err := checkIndex(len(items), from); err != nil {
		return out, err
	}
	if err := checkIndex(len(items), to); err != nil {
		return out, err
	}
	if from == to {
		return out, nil
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}

// MoveByID moves the item with id activeID to the position of overID,
// the way a drag-and-drop list reports a drop.
func MoveByID[T any](items []T, idOf func(T) string, activeID, overID string) ([]T, error) {
	if activeID == overID {
		return append([]T(nil), items...), nil
	}
	return Move(items, indexOf(items, idOf, activeID), indexOf(items, idOf, overID))
}

// Insert returns a copy of items with item placed at index.
// An index equal to len(items) appends.
func Insert[T any](items []T, index int, item T) ([]T, error) {
	if index < 0 || index > len(items) {
		return append([]T(nil), items...), fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...), nil
}

// Remove returns a copy of items without the element at index.
func Remove[T any](items []T, index int) ([]T, error) {
	if err := checkIndex(len(items), index); err != nil {
		return append([]T(nil), items...), err
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// Replace returns a copy of items with the element at index swapped for item.
func Replace[T any](items []T, index int, item T) ([]T, error) {
	out := append([]T(nil), items...)
	if err := checkIndex(len(items), index); err != nil {
		return out, err
	}
	out[index] = item
	return out, nil
}

func indexOf[T any](items []T, idOf func(T) string, id string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}
