package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the level loaded when none is named.
const DefaultLevel = "lagoon"

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevel loads an embedded level by stem name.
func LoadLevel(name string) (*leveldata.LevelData, error) {
	if name == "" {
		name = DefaultLevel
	}
	data, err := leveldata.Load(assetFS, "levels/"+name+".tmx", config.World.PixelsPerMeter)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return data, nil
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels", config.World.PixelsPerMeter)
	return names, err
}
