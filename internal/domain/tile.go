package domain

// TileCode - классификация одной клетки карты коллизий.
type TileCode uint8

const (
	Empty TileCode = iota
	// BlocksAll - стена.
	BlocksAll
	// BlocksMovementOnly - вода, пропасть: пролетаемо.
	BlocksMovementOnly
	// BlocksAllHidden - стена, не отображаемая на мини-карте.
	BlocksAllHidden
	BlocksMovementHidden
	// MapOnly и MapOnlyAlternate - декорации, проходимые пешком.
	MapOnly
	MapOnlyAlternate
	// EntityOccupied и AllyOccupied выставляются, только пока живая сущность стоит на клетке.
	EntityOccupied
	AllyOccupied
)

var tileCodeToString = map[TileCode]string{
	Empty:                "EMPTY",
	BlocksAll:            "BLOCKS_ALL",
	BlocksMovementOnly:   "BLOCKS_MOVEMENT",
	BlocksAllHidden:      "BLOCKS_ALL_HIDDEN",
	BlocksMovementHidden: "BLOCKS_MOVEMENT_HIDDEN",
	MapOnly:              "MAP_ONLY",
	MapOnlyAlternate:     "MAP_ONLY_ALT",
	EntityOccupied:       "ENTITY",
	AllyOccupied:         "ALLY",
}

func (c TileCode) String() string {
	if s, ok := tileCodeToString[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseTileCode принимает имя в том виде, в каком его печатает String.
func ParseTileCode(s string) (TileCode, bool) {
	for k, v := range tileCodeToString {
		if v == s {
			return k, true
		}
	}
	return Empty, false
}

// Valid сообщает, входит ли код в закрытое перечисление.
func (c TileCode) Valid() bool {
	return c <= AllyOccupied
}

// IsOccupied - клетка занята сущностью или союзником.
func (c TileCode) IsOccupied() bool {
	return c == EntityOccupied || c == AllyOccupied
}

// IsSolid - клетка блокирует всё, включая взгляд и полёт.
func (c TileCode) IsSolid() bool {
	return c == BlocksAll || c == BlocksAllHidden
}

// MovementClass определяет, какие клетки проходимы для типа передвижения.
type MovementClass uint8

const (
	MovementNormal MovementClass = iota
	MovementFlying
	MovementIntangible
)

var movementClassToString = map[MovementClass]string{
	MovementNormal:     "normal",
	MovementFlying:     "flying",
	MovementIntangible: "intangible",
}

func (m MovementClass) String() string {
	if s, ok := movementClassToString[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMovementClass - обратное преобразование для CLI и конфигов.
func ParseMovementClass(s string) (MovementClass, bool) {
	for k, v := range movementClassToString {
		if v == s {
			return k, true
		}
	}
	return MovementNormal, false
}

// CollisionClass определяет, блокируют ли занятые клетки движущегося.
type CollisionClass uint8

const (
	CollideWithAll CollisionClass = iota
	// CollideAsHero блокируется сущностями, но проходит сквозь союзников.
	CollideAsHero
	CollideNone
)

func (c CollisionClass) String() string {
	switch c {
	case CollideWithAll:
		return "all"
	case CollideAsHero:
		return "hero"
	case CollideNone:
		return "none"
	}
	return "unknown"
}
