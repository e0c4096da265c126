package pipeline

import (
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/tierrename/internal/naming"
)

// Discover lists dir, keeps entries whose name ends in ".png" (any case), and
// returns the names sorted by plain byte comparison, so "img10.png" comes
// before "img2.png" and upper case before lower case.
func Discover(fs billy.Dir, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if naming.IsPNG(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
