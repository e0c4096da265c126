// Package pipeline lists tier folders, plans their renames, and applies them.
//
// One folder is processed as Discover → BuildPlan → Apply: the listing is
// read once, the full old → new mapping is computed from that snapshot, and
// only then are renames performed. Run drives this over every configured
// tier in order and skips tiers whose folder is absent.
package pipeline
