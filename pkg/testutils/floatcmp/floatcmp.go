// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package floatcmp provides helpers for comparing floating point values
// and structures containing them in tests.
package floatcmp

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CloseFraction can be used to set a "close" tolerance for the relative
// deviation between two floating point numbers, within which the numbers are
// considered equal.
const CloseFraction float64 = 1e-14

// CloseMargin can be used to set a "close" tolerance for the absolute
// deviation between two floating point numbers, within which the numbers are
// considered equal. It is mostly useful around zero where relative deviations
// are meaningless.
const CloseMargin float64 = CloseFraction * CloseFraction

// EqualApprox reports whether expected and actual are deeply equal, treating
// floating point values as equal when they are within fraction (relative) or
// margin (absolute) of each other. NaNs are equal to each other.
func EqualApprox(expected interface{}, actual interface{}, fraction float64, margin float64) bool {
	return cmp.Equal(expected, actual, cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs())
}

// Close is EqualApprox with CloseFraction and CloseMargin.
func Close(expected interface{}, actual interface{}) bool {
	return EqualApprox(expected, actual, CloseFraction, CloseMargin)
}
