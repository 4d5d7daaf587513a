package appshot

import (
	"os"
	"path/filepath"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Font family candidates tried in priority order for each text role.
var (
	headlineFamilies = []string{"Georgia", "Times New Roman", "NewYork"}
	subtitleFamilies = []string{"Helvetica", "HelveticaNeue", "Arial", "SF-Pro-Display-Regular"}
)

// fontExtensions are the scalable font suffixes tried for each family.
var fontExtensions = []string{".ttf", ".ttc", ".otf"}

// fontDirs returns the directories searched for font files, system-wide
// locations first, then user-local ones.
func fontDirs() []string {
	dirs := []string{
		"/System/Library/Fonts",
		"/System/Library/Fonts/Supplemental",
		"/Library/Fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	dirs = append(dirs,
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"))
	}
	return dirs
}

// ResolveFont locates a scalable font for one of the candidate families and
// returns a face at the given point size together with its source. The
// caller owns the source and must close it.
//
// Each family is tried against each extension in each search directory, in
// that nested order, and the first file that both exists and parses wins.
// Files that fail to parse (such as TTC collections, which the text parser
// does not support) simply advance the search.
//
// When no candidate resolves, a warning is logged and the embedded Go
// Regular font is returned at the requested size. ResolveFont only fails if
// the fallback itself cannot be parsed.
func ResolveFont(families []string, points float64) (text.Face, *text.FontSource, error) {
	face, source, _ := resolveFontIn(fontDirs(), families, points)
	if source != nil {
		return face, source, nil
	}

	Logger().Warn("no matching font found, falling back to embedded Go Regular",
		"families", families)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, nil, err
	}
	return source.Face(points), source, nil
}

// resolveFontIn runs the candidate search over an explicit directory list.
// It returns the loaded face, its source, and the resolved path, or all
// zero values when nothing matched.
func resolveFontIn(dirs, families []string, points float64) (text.Face, *text.FontSource, string) {
	for _, family := range families {
		for _, ext := range fontExtensions {
			for _, dir := range dirs {
				candidate := filepath.Join(dir, family+ext)
				if _, err := os.Stat(candidate); err != nil {
					continue
				}
				source, err := text.NewFontSourceFromFile(candidate)
				if err != nil {
					continue
				}
				return source.Face(points), source, candidate
			}
		}
	}
	return nil, nil, ""
}
