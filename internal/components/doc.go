// Package components holds the data attached to dungeon entities: combat
// stats with status effects, an inventory of item handles and the AI state
// record. Components never reach back into the entity store themselves;
// they carry the owning handle so callers can validate it first.
package components
