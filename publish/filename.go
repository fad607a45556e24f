package publish

const (
	// StableFileName is the gist file updated on behalf of most actors.
	StableFileName = "release_metadata.json"

	// UnstableFileName is the gist file updated on behalf of actors mapped to
	// it in fileNames.
	UnstableFileName = "unstable_release_metadata.json"
)

var fileNames = map[string]string{
	"pandanotabear": UnstableFileName,
}

// ResolveFileName returns the gist file to update on behalf of the given
// actor. Actors that are not listed get StableFileName.
func ResolveFileName(actor string) string {
	if name, ok := fileNames[actor]; ok {
		return name
	}
	return StableFileName
}
