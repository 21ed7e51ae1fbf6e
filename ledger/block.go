package ledger

// Block is a single entry of the round history.
type Block struct {
	Index     int         `json:"index"`
	Timestamp int64       `json:"timestamp"`
	PrevHash  string      `json:"prev_hash"`
	Hash      string      `json:"hash"`
	Record    RoundRecord `json:"record"`
	Metadata  Metadata    `json:"metadata"`
}

// RoundRecord summarises a finished hand.
type RoundRecord struct {
	RoundID        string       `json:"round_id"`
	Board          []string     `json:"board"`
	Winners        []int        `json:"winners"`
	Category       string       `json:"category"`
	Pot            uint         `json:"pot"`
	Payouts        map[int]uint `json:"payouts"`
	DeckCommitment string       `json:"deck_commitment"`
}

type Metadata struct {
	Ruleset string            `json:"ruleset"`
	Extra   map[string]string `json:"extra,omitempty"`
}
