package backup

import (
	"path/filepath"
	"strings"
)

// Resolve derives the canonical local name and filesystem path for a remote
// URL. The name is the final URL path segment with one trailing ".git"
// stripped (exact, case-sensitive match only); the path joins it onto the
// destination directory. Pure function, no I/O.
func Resolve(remoteURL, destinationPath string) ResolvedRepository {
	segments := strings.Split(remoteURL, "/")
	name := segments[len(segments)-1]
	name = strings.TrimSuffix(name, ".git")

	return ResolvedRepository{
		URL:  remoteURL,
		Name: name,
		Path: filepath.Join(destinationPath, name),
	}
}
