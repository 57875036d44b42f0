/*
Package shuffle provides a deterministic, reversible byte permutation for
scattering sensitive constants in a binary's memory layout.

Note that this is NOT encryption, since anyone holding the seed can reverse
it. This falls squarely under the obfuscation category, and is NOT
recommended for security critical use on its own. It is useful for breaking
up recognizable byte patterns so that embedded data doesn't survive passive
binary analysis intact.

# How it works:

A 64-bit seed initializes a Squares counter generator, which drives a
Fisher-Yates pass over the buffer: each position is swapped with a
pseudo-randomly chosen position. Because the generator's output depends only
on (key, counter), Reverse can reconstruct the exact same swap sequence and
apply it in the opposite order, restoring the original bytes.

# Important note:

The same seed (and key, if a custom one was used) must be provided to
reverse the permutation. The seed carries no length information; losing it
makes the permutation practically unrecoverable.

# General guidelines:
  - A single seed reproduces the permutation for a sequence of any length.
  - Seeds near the uint64 boundary are fine; counter arithmetic wraps.
  - Use a custom key via WithKeySeed when independent shuffle domains are
    needed; pick keys with roughly equal numbers of one and zero bits.
*/
package shuffle
