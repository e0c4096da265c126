package pipeline

import (
	"path/filepath"

	"github.com/backmassage/tierrename/internal/config"
	"github.com/backmassage/tierrename/internal/naming"
)

// Rename is one entry of a plan: the file at 1-based position Index in the
// sorted listing moves from From to To.
type Rename struct {
	Index int
	From  string
	To    string
}

// Plan is the full rename mapping for one tier folder, computed from a single
// listing.
type Plan struct {
	Tier       config.Tier
	Dir        string // folder path inside the filesystem
	DisplayDir string // folder path as printed in progress lines
	Renames    []Rename
}

// BuildPlan assigns "<prefix>_NN<ext>" names to the sorted names in order.
// names must already be sorted (see Discover).
func BuildPlan(tier config.Tier, displayDir string, names []string) (Plan, error) {
	p := Plan{
		Tier:       tier,
		Dir:        tier.Folder,
		DisplayDir: displayDir,
		Renames:    make([]Rename, 0, len(names)),
	}
	for i, name := range names {
		idx := i + 1
		p.Renames = append(p.Renames, Rename{
			Index: idx,
			From:  name,
			To:    naming.SequenceName(tier.Prefix, idx, naming.Ext(name)),
		})
	}
	if err := naming.CheckTargets(p.moves()); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Conflicts returns the positions in Renames whose target is held by a source
// that would not have moved yet when applied in order.
func (p Plan) Conflicts() []int {
	return naming.FindChainConflicts(p.moves())
}

// Changes counts renames that actually change a name.
func (p Plan) Changes() int {
	n := 0
	for _, r := range p.Renames {
		if r.From != r.To {
			n++
		}
	}
	return n
}

// DisplayPath joins name onto the display folder.
func (p Plan) DisplayPath(name string) string {
	return filepath.Join(p.DisplayDir, name)
}

func (p Plan) moves() []naming.Move {
	moves := make([]naming.Move, len(p.Renames))
	for i, r := range p.Renames {
		moves[i] = naming.Move{From: r.From, To: r.To}
	}
	return moves
}
