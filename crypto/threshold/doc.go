// Package threshold threshold secret sharing
//
// The secret is split into shares for distribution,
// a threshold number of parties must combine their shares to reconstruct it.
// Subpackage shamir reconstructs the secret from possibly corrupted shares
// and reports which shares are suspicious.
//
//   - https://en.wikipedia.org/wiki/Shamir%27s_secret_sharing
package threshold
