package disk

const kibibyte = 1024

// ConvertFromKbToBytes converts the 1K-block counts reported by statfs and df.
func ConvertFromKbToBytes(sizeInKb uint64) uint64 {
	return sizeInKb * kibibyte
}
