package fdb

import "encoding/binary"

// HashKey reinterprets the bits of a 32-bit signed key as the unsigned hash
// used for bucket selection.
func HashKey(key int32) uint32 {
	return uint32(key)
}

// BucketIndex returns hash mod count, or -1 for a table without buckets.
func BucketIndex(hash uint32, count int) int {
	if count <= 0 {
		return -1
	}
	return int(hash % uint32(count))
}

// HashField returns the bucket hash of a primary key field. Integers hash
// to their bits, BigInts to their low 32 bits and strings with
// SuperFastHash. Other fields hash to 0.
func HashField(f Field) uint32 {
	switch f.Type() {
	case Integer:
		v, _ := f.Int()
		return HashKey(v)
	case BigInt:
		v, _ := f.BigInt()
		return uint32(uint64(v))
	case Text, VarChar:
		return SuperFastHash(f.text)
	default:
		return 0
	}
}

// SuperFastHash is Paul Hsieh's hash, as used by the store for text keys.
func SuperFastHash(data []byte) uint32 {
	n := len(data)
	if n == 0 {
		return 0
	}
	hash := uint32(n)
	rem := n & 3

	for i := n >> 2; i > 0; i-- {
		hash += uint32(binary.LittleEndian.Uint16(data))
		tmp := (uint32(binary.LittleEndian.Uint16(data[2:])) << 11) ^ hash
		hash = (hash << 16) ^ tmp
		data = data[4:]
		hash += hash >> 11
	}

	switch rem {
	case 3:
		hash += uint32(binary.LittleEndian.Uint16(data))
		hash ^= hash << 16
		hash ^= uint32(int32(int8(data[2]))) << 18
		hash += hash >> 11
	case 2:
		hash += uint32(binary.LittleEndian.Uint16(data))
		hash ^= hash << 11
		hash += hash >> 17
	case 1:
		hash += uint32(int32(int8(data[0])))
		hash ^= hash << 10
		hash += hash >> 1
	}

	hash ^= hash << 3
	hash += hash >> 5
	hash ^= hash << 4
	hash += hash >> 17
	hash ^= hash << 25
	hash += hash >> 6
	return hash
}
