package clickhouse

import (
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation, network string, err error, started time.Time)
	}
	// RowBatch is the part of a ClickHouse batch the repository drives.
	RowBatch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
