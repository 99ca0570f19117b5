package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
	ErrKeyExists   = errors.New("db: key already exists")
)

// Op constants map to Redis command names for error context.
const (
	OpDel      = "DEL"
	OpExists   = "EXISTS"
	OpHSet     = "HSET"
	OpHGetAll  = "HGETALL"
	OpHIncrBy  = "HINCRBY"
	OpSAdd     = "SADD"
	OpSRem     = "SREM"
	OpSMembers = "SMEMBERS"
	OpSCard    = "SCARD"
	OpLPush    = "LPUSH"
	OpLRem     = "LREM"
	OpLTrim    = "LTRIM"
	OpLRange   = "LRANGE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
