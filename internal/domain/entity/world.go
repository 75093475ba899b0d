package entity

// TileKind represents the type of a tile
type TileKind int

const (
	TileGrass TileKind = iota
	TilePath
	TileWater
	TileWall
)

// Tile represents a single tile in the world
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// World represents the current map's tile data
type World struct {
	Width    int // Tiles
	Height   int // Tiles
	TileSize int // Pixels
	Tiles    [][]Tile
	SpawnX   int // Pixels
	SpawnY   int // Pixels
}

// Tile returns the tile at the given tile coordinates
func (w *World) Tile(tx, ty int) Tile {
	if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
		return Tile{Kind: TileWall, Walkable: false}
	}
	return w.Tiles[ty][tx]
}

// TileAtPixel returns the tile at the given pixel coordinates
func (w *World) TileAtPixel(px, py int) Tile {
	return w.Tile(px/w.TileSize, py/w.TileSize)
}

// WalkableAt checks if the tile at pixel coordinates can be walked on
func (w *World) WalkableAt(px, py int) bool {
	return w.TileAtPixel(px, py).Walkable
}

// PixelSize returns the world dimensions in pixels
func (w *World) PixelSize() (int, int) {
	return w.Width * w.TileSize, w.Height * w.TileSize
}
