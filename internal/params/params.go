package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	BytesScalar  = 32
	BytesField   = 32
	BytesPoint   = 2 * BytesField // affine x ‖ y, as absorbed by the hash
	BytesSEC1    = 1 + BytesPoint // 0x04 ‖ x ‖ y
	BytesAddress = 20

	// MaxNonceIterations bounds the rejection sampling of a proof nonce.
	// A uniform 256 bit string falls outside [1, n) with probability < 2⁻¹²⁷.
	MaxNonceIterations = 255

	// MaxFieldHashIterations bounds the re-hashing of a digest that is not below p.
	MaxFieldHashIterations = 255

	// MaxHashToCurveIterations bounds the try-and-increment search.
	// Each candidate lands on the curve with probability ~1/2.
	MaxHashToCurveIterations = 255
)
