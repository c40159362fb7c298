package types

// EntityID identifies a tower, enemy or projectile for the lifetime of a
// session. IDs are never reused within a session.
type EntityID uint64
