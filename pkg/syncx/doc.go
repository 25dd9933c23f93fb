// Package syncx provides small synchronization containers shared across
// the fsmkit packages.
//
// Guarded is the main primitive: a value paired with a sync.RWMutex,
// exposing atomic Load/Store plus scoped Read (shared) and Write
// (exclusive) sections that release on all exit paths. It exists so
// that types with one logical mutable field can get a correct locking
// discipline without spreading mutex handling across every method.
package syncx
