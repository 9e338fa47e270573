package conf

// DefaultLoadFactor - Fraction of the table size that the number of stored entries may reach before the table grows
const DefaultLoadFactor float64 = 0.92

// LegacyLoadFactor - Load factor used by earlier versions of the table, kept for callers wanting the denser growth schedule
const LegacyLoadFactor float64 = 0.8

// NoPrimeIdx - Prime index marker telling that the table size is no longer taken from the prime capacity table.
// Happens when a requested size is bigger than the biggest prime or when growth has exhausted the table.
const NoPrimeIdx int = -1

// GrowthMultiplier - Factor applied to the current size when growing outside the prime capacity table
const GrowthMultiplier int = 2
