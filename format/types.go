package format

type (
	HeaderType      uint8
	EndianType      uint8
	CompressionType uint8
)

const (
	HeaderNone   HeaderType = 0x0 // HeaderNone means the root tag starts at byte 0.
	HeaderLevel  HeaderType = 0x1 // HeaderLevel is the 8-byte version + payload length prefix.
	HeaderEntity HeaderType = 0x2 // HeaderEntity is the 12-byte "ENT\0" + version + payload length prefix.

	BigEndian    EndianType = 0x0 // BigEndian is the historical payload byte order.
	LittleEndian EndianType = 0x1 // LittleEndian is the payload byte order of headered streams.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
	CompressionZlib CompressionType = 0x6 // CompressionZlib represents zlib compression.
)

func (h HeaderType) String() string {
	switch h {
	case HeaderNone:
		return "None"
	case HeaderLevel:
		return "LevelHeader"
	case HeaderEntity:
		return "EntityHeader"
	default:
		return "Unknown"
	}
}

// IsValid reports whether h is one of the known header layouts.
func (h HeaderType) IsValid() bool {
	return h <= HeaderEntity
}

func (e EndianType) String() string {
	switch e {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is one of the known byte orders.
func (e EndianType) IsValid() bool {
	return e == BigEndian || e == LittleEndian
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}
