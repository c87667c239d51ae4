package cmd

import (
	"github.com/yourorg/cwsctl/internal/pack"
)

// resolveArtifact picks the package to upload: an explicit --zip path wins,
// otherwise discovery from package.json in the current directory. Either way
// the archive is inspected before any network call.
func resolveArtifact(zipPath string) (pack.Artifact, error) {
	var (
		art pack.Artifact
		err error
	)
	if zipPath != "" {
		art, err = pack.FromPath(zipPath)
	} else {
		art, err = pack.Locate(".")
	}
	if err != nil {
		return pack.Artifact{}, err
	}
	if err := pack.Inspect(art.Path); err != nil {
		return pack.Artifact{}, err
	}
	return art, nil
}
