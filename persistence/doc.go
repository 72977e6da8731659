// Package persistence defines the binary frame used to store packed
// sequences.
//
// A frame is a fixed 40-byte little-endian FileHeader followed by a
// block holding the packed words:
//
//	FileHeader  magic "BSQ1", version, item bits, compression,
//	            item count, word count, payload size, CRC32C
//	Block       [uncompressed size uint32][compressed size uint32][data]
//
// The block is compressed with LZ4 or ZSTD when requested and when doing
// so saves at least ten percent; otherwise the words are stored raw.
// The checksum always covers the uncompressed words.
package persistence
