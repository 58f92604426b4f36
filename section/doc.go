// Package section models the fixed-size header that may precede a tree payload.
//
// Three stream layouts exist and none of them carries an explicit format
// flag:
//
//	None:          0x0A <root name> <root compound>
//	LevelHeader:   <version:u32le> <length:u32le> 0x0A ...
//	EntityHeader:  "ENT\0" <version:u32le> <length:u32le> 0x0A ...
//
// The length field counts every byte after the header. Header fields are
// little-endian regardless of the payload byte order, and the presence of
// either header implies a little-endian payload.
package section
