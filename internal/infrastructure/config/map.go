package config

// MapConfig is the root config for map JSON files
type MapConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        MapSizeConfig                `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type MapSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Ground []string `json:"ground"`
}

type TileMappingConfig struct {
	Type     string `json:"type"`
	Walkable bool   `json:"walkable"`
}
