// internal/component/projectile.go
package component

import "go-castle-defense/internal/types"

// Projectile представляет летящий самонаводящийся снаряд.
// TargetID is resolved against the live enemy store every frame; an absent
// or finished target means the projectile simply expires.
type Projectile struct {
	Position
	TargetID types.EntityID
	Speed    float64 // px per ms
	Damage   float64
	Finished bool
}
