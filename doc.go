// Package kzg implements the KZG polynomial-commitment scheme over the
// BLS12-381 pairing-friendly curve, specialized for Ethereum's EIP-4844
// (blob transactions) and EIP-7594 (PeerDAS).
//
// The package covers trusted-setup ingest and FK20 precompute, the basic
// blob/commitment/proof operations of EIP-4844, and the Reed-Solomon
// extension, FK20 multi-proof, recovery and batch-verification machinery
// of EIP-7594. It does not implement language bindings, a CLI, the
// underlying curve/pairing primitives (delegated to gnark-crypto), or
// trusted-setup ceremony generation.
//
// All exported operations are synchronous and side-effect free beyond the
// returned values: there is no global mutable state once a KZGSettings has
// been built by LoadSetup/LoadSetupFromBytes.
package kzg
