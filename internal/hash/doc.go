// Package hash provides hardware-accelerated checksums for data integrity.
//
// # CRC32-Castagnoli (CRC32C)
//
// Persisted sequence frames carry a CRC32C of their uncompressed word
// payload. The implementation comes from github.com/klauspost/crc32,
// which uses SSE4.2 on x86 and the CRC extension on ARM.
//
// Usage:
//
//	checksum := hash.CRC32C(data)
package hash
