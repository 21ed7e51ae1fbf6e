// Package ledger keeps the history of the hands played at a table as a hash
// chained, append-only log.
//
// # Core Components
//
// Blockchain: the ordered list of blocks, starting from a genesis block whose
// previous hash is "0".
//
// Block: one finished hand (RoundRecord) with the hash of the block before it.
//
// # Tamper detection
//
// Every block hash covers the previous hash, so changing any recorded hand
// breaks the chain from that block on. Verify can be called at any time to
// walk the whole chain.
package ledger
