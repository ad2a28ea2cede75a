package world

// BlockType identifies a block kind by its registry id.
type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeBedrock
	BlockTypeStoneBrick
	BlockTypeWater
	BlockTypeGlass
	BlockTypePlanksOak
	BlockTypePlanksBirch
	BlockTypePlanksSpruce
	BlockTypePlanksJungle
	BlockTypePlanksAcacia
	BlockTypeLampRed
	BlockTypeLampGreen
	BlockTypeLampBlue
	BlockTypeLampWhite
)
