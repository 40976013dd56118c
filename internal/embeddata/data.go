package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md motd.json sounds.zip
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to all bundled assets.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadMOTD returns the contents of motd.json.
func ReadMOTD() ([]byte, error) {
	return embeddedFS.ReadFile("motd.json")
}

// ReadSoundsZip returns the contents of the embedded sounds.zip.
func ReadSoundsZip() ([]byte, error) {
	return embeddedFS.ReadFile("sounds.zip")
}
