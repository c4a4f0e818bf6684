package occupancy

import "github.com/google/uuid"

// OwnerGroup is every active occupancy held by one owner.
type OwnerGroup struct {
	OwnerID uuid.UUID
	Records []*Occupancy
}

// GroupByOwner keeps first-seen owner order and the input order inside each group.
func GroupByOwner(records []*Occupancy) []OwnerGroup {
	index := make(map[uuid.UUID]int)
	var groups []OwnerGroup
	for _, r := range records {
		i, ok := index[r.ownerID]
		if !ok {
			i = len(groups)
			index[r.ownerID] = i
			groups = append(groups, OwnerGroup{OwnerID: r.ownerID})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// SplitSuspended separates records waiting for eviction from the ones still collecting rent.
func SplitSuspended(records []*Occupancy) (suspended, collectable []*Occupancy) {
	for _, r := range records {
		if r.IsSuspended() {
			suspended = append(suspended, r)
		} else {
			collectable = append(collectable, r)
		}
	}
	return suspended, collectable
}
