// Package models holds the Spanner table layouts shared by the write repositories and the
// read queries. Each m_<table> package declares its column names and mutation builders.
package models

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

// NullString maps a nil pointer to a typed NULL.
func NullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

// NullNumeric maps a nil rat to a typed NULL.
func NullNumeric(r *big.Rat) spanner.NullNumeric {
	if r == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *new(big.Rat).Set(r), Valid: true}
}

// NullInt64 maps a nil pointer to a typed NULL.
func NullInt64(v *int64) spanner.NullInt64 {
	if v == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: *v, Valid: true}
}

// StringPtr is the inverse of NullString for scanned rows.
func StringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.StringVal
	return &s
}

// Int64Ptr is the inverse of NullInt64 for scanned rows.
func Int64Ptr(ni spanner.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

// NumericString renders a NUMERIC column with two decimals, or nil when NULL.
func NumericString(nn spanner.NullNumeric) *string {
	if !nn.Valid {
		return nil
	}
	s := nn.Numeric.FloatString(2)
	return &s
}

// WithKey returns a copy of values with the primary key columns set, for UpdateMap.
func WithKey(values map[string]interface{}, key map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(values)+len(key))
	for col, v := range values {
		out[col] = v
	}
	for col, v := range key {
		out[col] = v
	}
	return out
}
