package spacedlist

import "github.com/Workiva/spaced-list/position"

// Path is the trail left by a deep query: one TraversalResult per level
// descended into, from the outermost list to the innermost sublist that
// produced the final match. Each entry's Position is local to its own
// List, so to recover the global position, sum Position across the whole
// path.
type Path[S position.Spacing[S]] []TraversalResult[S]

// GlobalPosition sums the local positions of every level in the path,
// recovering the match's position in the outermost list's coordinate
// frame.
func (p Path[S]) GlobalPosition() S {
	var total S
	for _, r := range p {
		total = total.Add(r.Position)
	}
	return total
}

// deepFloor implements DeepBefore (strict) and DeepAtOrBefore/DeepAt
// (non-strict). At each level it takes the shallow floor (or strict
// before) match, then, if that node hosts a non-empty sublist whose
// first real node still lies at or before (or before, if strict) the
// remaining local target, recurses into that sublist for a tighter
// match.
func deepFloor[S position.Spacing[S]](sl *SpacedList[S], target S, strict bool) (Path[S], bool) {
	var res TraversalResult[S]
	var ok bool
	if strict {
		res, ok = sl.Before(target)
	} else {
		res, ok = sl.AtOrBefore(target)
	}
	if !ok {
		return nil, false
	}

	path := Path[S]{res}
	localTarget := target.Sub(res.Position)

	child, hasChild := sl.Sublist(res.Index)
	if hasChild && child.size > 1 {
		firstReal := child.linkLengths[0]
		recurse := firstReal.Compare(localTarget) < 0
		if !strict {
			recurse = firstReal.Compare(localTarget) <= 0
		}
		if recurse {
			if subPath, subOk := deepFloor(child, localTarget, strict); subOk {
				path = append(path, subPath...)
			}
		}
	}

	return path, true
}

// deepCeil implements DeepAfter (strict) and DeepAtOrAfter (non-strict).
// It first locates the floor of target in sl to identify which gap would
// host a tighter match, then either returns that floor directly (an exact,
// non-strict match needs no deeper search) or recurses into the floor's
// sublist looking for a closer match before falling back to the shallow
// ceil in sl.
func deepCeil[S position.Spacing[S]](sl *SpacedList[S], target S, strict bool) (Path[S], bool) {
	floor, hasFloor := sl.AtOrBefore(target)
	if !hasFloor {
		var zero S
		return Path[S]{{List: sl, Position: zero, Index: 0}}, true
	}

	exact := floor.Position.Compare(target) == 0
	if exact && !strict {
		return Path[S]{floor}, true
	}

	var top TraversalResult[S]
	var ok bool
	if strict {
		top, ok = sl.After(target)
	} else {
		top, ok = sl.AtOrAfter(target)
	}
	if !ok {
		return nil, false
	}
	path := Path[S]{top}

	localTarget := target.Sub(floor.Position)
	child, hasChild := sl.Sublist(floor.Index)
	if hasChild && child.Length().Compare(localTarget) > 0 {
		if subPath, subOk := deepCeil(child, localTarget, strict); subOk {
			path = Path[S]{floor}
			path = append(path, subPath...)
		}
	}

	return path, true
}

// DeepBefore recurses through sublists to find the deepest node strictly
// before target.
func (sl *SpacedList[S]) DeepBefore(target S) (Path[S], bool) {
	return deepFloor(sl, target, true)
}

// DeepAtOrBefore recurses through sublists to find the deepest node at or
// before target.
func (sl *SpacedList[S]) DeepAtOrBefore(target S) (Path[S], bool) {
	return deepFloor(sl, target, false)
}

// DeepAt recurses through sublists to find a node at exactly target, by
// running DeepAtOrBefore and checking the resulting path's summed global
// position for an exact match.
func (sl *SpacedList[S]) DeepAt(target S) (Path[S], bool) {
	path, ok := deepFloor(sl, target, false)
	if !ok {
		return nil, false
	}
	if path.GlobalPosition().Compare(target) != 0 {
		return nil, false
	}
	return path, true
}

// DeepAtOrAfter recurses through sublists to find the deepest node at or
// after target.
func (sl *SpacedList[S]) DeepAtOrAfter(target S) (Path[S], bool) {
	return deepCeil(sl, target, false)
}

// DeepAfter recurses through sublists to find the deepest node strictly
// after target.
func (sl *SpacedList[S]) DeepAfter(target S) (Path[S], bool) {
	return deepCeil(sl, target, true)
}
