package kzg

// Bytes32 is an untrusted, not-yet-validated field-element encoding.
type Bytes32 = [32]byte

// Bytes48 is a compressed G1 point encoding (commitment or proof).
type Bytes48 = [48]byte

// Blob is a blob of N field elements in lagrange (bit-reversed) basis.
type Blob = [KZGBytesPerBlob]byte

// Cell is L consecutive field elements from one column of the extended blob.
type Cell = [KZGBytesPerCell]byte

// KZGCommitment is a trusted (validated) compressed G1 commitment.
type KZGCommitment = Bytes48

// KZGProof is a trusted (validated) compressed G1 opening proof.
type KZGProof = Bytes48
