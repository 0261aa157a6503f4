package interfaces

// BuildSite is the map-side legality check for placing a tower. occupied
// reports whether a cell already holds a tower.
type BuildSite interface {
	CanBuild(col, row int, occupied func(col, row int) bool) bool
}

// Clock is a monotonic millisecond time source for tower cooldowns.
type Clock interface {
	Now() float64
}
