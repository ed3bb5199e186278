package taxonomy

import (
	"fmt"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/logger"
)

// BuildTree nests the flat species list under its parents.
//
// Records with a nil ParentID become roots. Siblings keep their input order.
// A record whose parent is not in the list is dropped together with its
// descendants. The list is rejected as a whole when IDs repeat (ErrDuplicateID)
// or parent references loop (ErrCycle).
func BuildTree(species []Species) ([]*Node, error) {
	if len(species) == 0 {
		return []*Node{}, nil
	}

	byID := make(map[int64]*Node, len(species))
	for i := range species {
		s := &species[i]
		if _, exists := byID[s.ID]; exists {
			return nil, errors.New(fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)).
				Component("taxonomy").
				Category(errors.CategoryValidation).
				Context("species_id", s.ID).
				Build()
		}
		byID[s.ID] = &Node{
			ID:               s.ID,
			Name:             s.Name,
			ParentID:         copyID(s.ParentID),
			Active:           s.Active,
			ObservationCount: s.ObservationCount,
			Children:         []*Node{},
		}
	}

	if id, found := findCycle(species, byID); found {
		return nil, errors.New(fmt.Errorf("%w at species %d", ErrCycle, id)).
			Component("taxonomy").
			Category(errors.CategoryValidation).
			Context("species_id", id).
			Build()
	}

	roots := []*Node{}
	dropped := 0
	for i := range species {
		node := byID[species[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[*node.ParentID]
		if !ok {
			dropped++
			GetLogger().Debug("Dropping species with unknown parent",
				logger.Int64("species_id", node.ID),
				logger.Int64("parent_id", *node.ParentID))
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if dropped > 0 {
		GetLogger().Debug("Built taxonomy tree with orphans removed",
			logger.Int("records", len(species)),
			logger.Int("orphans", dropped))
	}

	return roots, nil
}

const (
	unvisited uint8 = iota
	visiting
	done
)

// findCycle walks each record's parent chain once. A chain ends at a root or
// at a dangling parent reference.
func findCycle(species []Species, byID map[int64]*Node) (int64, bool) {
	state := make(map[int64]uint8, len(species))
	var path []int64

	for i := range species {
		path = path[:0]
		id := species[i].ID
		for {
			switch state[id] {
			case done:
			case visiting:
				return id, true
			default:
				state[id] = visiting
				path = append(path, id)
				node := byID[id]
				if node.ParentID != nil {
					if _, ok := byID[*node.ParentID]; ok {
						id = *node.ParentID
						continue
					}
				}
			}
			break
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return 0, false
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
