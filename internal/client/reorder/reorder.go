// Package reorder moves one member of an owned collection up or down and persists the new
// sort orders.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Member is one element of an ordered collection.
type Member struct {
	ID        string
	SortOrder int
}

const (
	Up   = -1
	Down = +1
)

// SortWriter persists the sort order of one member.
type SortWriter func(ctx context.Context, id string, sortOrder int) error

// OrderWriter persists the complete order of a collection in one call.
type OrderWriter func(ctx context.Context, ids []string) error

// Sorted returns a copy of members ordered by sort order. Equal sort orders keep their
// relative position.
func Sorted(members []Member) []Member {
	out := append([]Member(nil), members...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// swapped sorts members, swaps index with index+dir and renumbers every member by its
// position. ok is false when either index is out of range.
func swapped(members []Member, index, dir int) (out []Member, a, b Member, ok bool) {
	target := index + dir
	if (dir != Up && dir != Down) || index < 0 || index >= len(members) || target < 0 || target >= len(members) {
		return members, Member{}, Member{}, false
	}
	out = Sorted(members)
	out[index], out[target] = out[target], out[index]
	for i := range out {
		out[i].SortOrder = i
	}
	return out, out[index], out[target], true
}

// Move swaps the member at index of the sorted collection with its neighbour in direction
// dir and writes both new positions, one call each. The renumbered collection is returned
// only when both writes succeed. If the second write fails the first member's previous
// sort order is written back and members are returned unchanged together with the error.
// An out of range move returns members unchanged without any call.
func Move(ctx context.Context, members []Member, index, dir int, write SortWriter) ([]Member, error) {
	sorted := Sorted(members)
	out, first, second, ok := swapped(members, index, dir)
	if !ok {
		return members, nil
	}
	previous := sorted[index+dir].SortOrder

	if err := write(ctx, first.ID, first.SortOrder); err != nil {
		return members, fmt.Errorf("reorder %s: %w", first.ID, err)
	}
	if err := write(ctx, second.ID, second.SortOrder); err != nil {
		err = fmt.Errorf("reorder %s: %w", second.ID, err)
		if rerr := write(ctx, first.ID, previous); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restore %s: %w", first.ID, rerr))
		}
		return members, err
	}
	return out, nil
}

// MoveBatched performs the same move as Move but persists the whole order in a single call,
// which the server applies atomically.
func MoveBatched(ctx context.Context, members []Member, index, dir int, write OrderWriter) ([]Member, error) {
	out, _, _, ok := swapped(members, index, dir)
	if !ok {
		return members, nil
	}
	ids := make([]string, len(out))
	for i, m := range out {
		ids[i] = m.ID
	}
	if err := write(ctx, ids); err != nil {
		return members, fmt.Errorf("reorder: %w", err)
	}
	return out, nil
}
