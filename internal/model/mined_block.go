package model

import "time"

// MinedBlock describes a locally mined block stored in ClickHouse.
type MinedBlock struct {
	Network    string
	Instance   uint16
	Height     uint64
	Hash       string
	PrevHash   string
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32
	TXCount    uint32
	EmptyBlock bool
	MinedAt    time.Time
}
