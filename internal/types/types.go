package types

// EntityID identifies an entity in the ECS. Zero is never allocated.
type EntityID uint64
