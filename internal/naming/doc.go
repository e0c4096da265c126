// Package naming holds the pure naming rules of the renamer: which entries
// count as PNGs, how an extension is taken from a name, how the sequential
// "<prefix>_NN<ext>" names are built, and how a list of moves within one
// directory is checked for duplicate targets and chain conflicts.
//
// Nothing here touches the filesystem; see package pipeline for listing and
// applying renames.
package naming
