package kzg

// EIP-4844 / EIP-7594 fixed sizes, matching the consensus-spec constants
// (FIELD_ELEMENTS_PER_BLOB, FIELD_ELEMENTS_PER_EXT_BLOB, ...).
const (
	// KZGBytesPerFieldElement is the serialized size of a single BLS scalar.
	KZGBytesPerFieldElement = 32

	// KZGFieldElementsPerBlob is N, the number of field elements in a blob.
	KZGFieldElementsPerBlob = 4096

	// KZGFieldElementsPerExtBlob is M, the number of field elements in the
	// Reed-Solomon-extended blob (2x expansion).
	KZGFieldElementsPerExtBlob = 2 * KZGFieldElementsPerBlob

	// KZGFieldElementsPerCell is L, the number of field elements per cell.
	KZGFieldElementsPerCell = 64

	// KZGCellsPerExtBlob is C = M/L, the number of cells in an extended blob.
	KZGCellsPerExtBlob = KZGFieldElementsPerExtBlob / KZGFieldElementsPerCell

	// KZGCellsPerBlob is CB = N/L, the minimum number of cells needed to
	// recover a full extended blob.
	KZGCellsPerBlob = KZGFieldElementsPerBlob / KZGFieldElementsPerCell

	// KZGBytesPerBlob is the total byte size of a blob.
	KZGBytesPerBlob = KZGFieldElementsPerBlob * KZGBytesPerFieldElement

	// KZGBytesPerCell is the byte size of a single cell.
	KZGBytesPerCell = KZGFieldElementsPerCell * KZGBytesPerFieldElement

	// KZGBytesPerCommitment is the size of a compressed G1 commitment.
	KZGBytesPerCommitment = 48

	// KZGBytesPerProof is the size of a compressed G1 proof.
	KZGBytesPerProof = 48

	// kzgG2PointsInSetup is the number of G2 monomial points carried by the
	// trusted setup (only g2[0]==[1]G2, g2[1]==[tau]G2 and g2[L]==[tau^L]G2
	// are ever used, but the setup file format carries all 65 for forward
	// compatibility with larger cell sizes).
	kzgG2PointsInSetup = 65

	// msmNaiveThreshold is the input-count boundary below which MSM always
	// uses the plain summation path instead of Pippenger. Security-critical
	// verification sites additionally pin the naive path at any size.
	msmNaiveThreshold = 8
)

// recoveryShiftFactorUint64 is the scalar 7 used to shift into a coset
// during recovery, keeping the vanishing polynomial nonzero at every
// evaluation point.
const recoveryShiftFactorUint64 = 7
