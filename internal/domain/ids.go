package domain

import "github.com/google/uuid"

// OrderByIDs arranges items in the order of ids. An id with no matching item
// yields a NotFoundError of the given kind.
func OrderByIDs[T any](ids []uuid.UUID, items []T, kind EntityKind, idOf func(T) uuid.UUID) ([]T, error) {
	byID := make(map[uuid.UUID]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}

	ordered := make([]T, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, NewNotFound(kind, id)
		}
		ordered = append(ordered, it)
	}
	return ordered, nil
}
