// Package registry holds the static table of block definitions: identity
// and the properties the lighting core needs (transparency, emission).
package registry

import (
	"voxlight/internal/lighting"
	"voxlight/internal/world"
)

// BlockDefinition defines the properties of a block type.
type BlockDefinition struct {
	ID            world.BlockType
	Name          string
	IsSolid       bool
	IsTransparent bool

	// IsLight marks a block as an emissive source: RegisterBlock requires at
	// least one of RedLightLevel/GreenLightLevel/BlueLightLevel to be set.
	IsLight         bool
	RedLightLevel   uint8
	GreenLightLevel uint8
	BlueLightLevel  uint8
}

// Global registry
var (
	Blocks     = make(map[world.BlockType]*BlockDefinition)
	BlockNames = make(map[string]world.BlockType)
)

func RegisterBlock(def *BlockDefinition) {
	if def.IsLight && def.RedLightLevel == 0 && def.GreenLightLevel == 0 && def.BlueLightLevel == 0 {
		panic("registry: light block " + def.Name + " has no light level")
	}
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

func InitRegistry() {
	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeAir,
		Name:          "air",
		IsSolid:       false,
		IsTransparent: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypeGrass,
		Name:    "grass",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypeDirt,
		Name:    "dirt",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypeStone,
		Name:    "stone",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypeBedrock,
		Name:    "bedrock",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypeStoneBrick,
		Name:    "stonebrick",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeWater,
		Name:          "water",
		IsSolid:       false,
		IsTransparent: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeGlass,
		Name:          "glass",
		IsSolid:       true,
		IsTransparent: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypePlanksOak,
		Name:    "planks_oak",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypePlanksBirch,
		Name:    "planks_birch",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypePlanksSpruce,
		Name:    "planks_spruce",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypePlanksJungle,
		Name:    "planks_jungle",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:      world.BlockTypePlanksAcacia,
		Name:    "planks_acacia",
		IsSolid: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeLampRed,
		Name:          "lamp_red",
		IsSolid:       true,
		IsTransparent: true,
		IsLight:       true,
		RedLightLevel: 15,
	})

	RegisterBlock(&BlockDefinition{
		ID:              world.BlockTypeLampGreen,
		Name:            "lamp_green",
		IsSolid:         true,
		IsTransparent:   true,
		IsLight:         true,
		GreenLightLevel: 15,
	})

	RegisterBlock(&BlockDefinition{
		ID:             world.BlockTypeLampBlue,
		Name:           "lamp_blue",
		IsSolid:        true,
		IsTransparent:  true,
		IsLight:        true,
		BlueLightLevel: 15,
	})

	RegisterBlock(&BlockDefinition{
		ID:              world.BlockTypeLampWhite,
		Name:            "lamp_white",
		IsSolid:         true,
		IsTransparent:   true,
		IsLight:         true,
		RedLightLevel:   15,
		GreenLightLevel: 15,
		BlueLightLevel:  15,
	})
}

// Lighting adapts the global block table to lighting.Registry, so the
// lighting core can resolve a raw voxel id without knowing about
// BlockDefinition or the world package.
type Lighting struct{}

// GetBlockByID satisfies lighting.Registry. Unknown ids behave like air:
// transparent, non-emissive.
func (Lighting) GetBlockByID(id int) lighting.Block {
	def, ok := Blocks[world.BlockType(id)]
	if !ok {
		return lighting.Block{IsTransparent: true}
	}
	return lighting.Block{
		IsTransparent:   def.IsTransparent,
		IsLight:         def.IsLight,
		RedLightLevel:   def.RedLightLevel,
		GreenLightLevel: def.GreenLightLevel,
		BlueLightLevel:  def.BlueLightLevel,
	}
}
