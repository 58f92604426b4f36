package section

// Header magic and sizes.
const (
	EntityMagic      = "ENT\x00" // EntityMagic prefixes an entity header.
	EntityMagicSize  = len(EntityMagic)
	FieldSize        = 4                                 // every header field is a u32
	LevelHeaderSize  = 2 * FieldSize                     // version + payload length
	EntityHeaderSize = EntityMagicSize + LevelHeaderSize // magic + version + payload length
)
