package system

import (
	"github.com/younwookim/awaking/internal/domain/entity"
	"github.com/younwookim/awaking/internal/infrastructure/config"
)

// LoadWorld converts a MapConfig into a World entity
func LoadWorld(cfg *config.MapConfig) *entity.World {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Ground)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Ground {
		tiles[y] = make([]entity.Tile, tileWidth)
		// Cells beyond a short row get the same default as unmapped chars
		for x := range tiles[y] {
			tiles[y][x] = entity.Tile{Kind: entity.TileGrass, Walkable: true}
		}
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Kind: entity.TileGrass, Walkable: true}
				continue
			}

			var kind entity.TileKind
			switch mapping.Type {
			case "wall":
				kind = entity.TileWall
			case "path":
				kind = entity.TilePath
			case "water":
				kind = entity.TileWater
			default:
				kind = entity.TileGrass
			}

			tiles[y][x] = entity.Tile{
				Kind:     kind,
				Walkable: mapping.Walkable,
			}
		}
	}

	return &entity.World{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}
