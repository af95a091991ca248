/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytequantity

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/shie1/bytes/commonerrors"
)

// String renders the raw byte count with no unit scaling, e.g. "500 bytes".
func (q ByteQuantity) String() string {
	return formatNumber(q.bytes) + " bytes"
}

// ToFormattedString scales the quantity to the largest fitting unit of its
// preferred system and renders it, e.g. "1.5 KiB".
func (q ByteQuantity) ToFormattedString() (string, error) {
	return q.ToFormattedStringIn(q.system)
}

// ToFormattedStringIn is similar to ToFormattedString but uses the given
// unit system instead of the preferred one.
//
// The quantity is repeatedly divided by the system base until it drops
// below it, then rendered against the unit name reached. A quantity too
// large for the largest named unit returns commonerrors.ErrOutOfRange
// rather than being rendered against a unit that does not exist.
func (q ByteQuantity) ToFormattedStringIn(system UnitSystem) (string, error) {
	base, err := system.Base()
	if err != nil {
		return "", err
	}
	labels, err := system.labels()
	if err != nil {
		return "", err
	}
	remaining := q.bytes
	tier := 0
	for remaining >= base {
		if tier == len(labels)-1 {
			return "", commonerrors.Newf(commonerrors.ErrOutOfRange, "%v bytes exceeds the largest named %v unit [%v]", q.bytes, system, labels[tier])
		}
		remaining /= base
		tier++
	}
	return formatNumber(remaining) + " " + labels[tier], nil
}

// formatNumber renders a number with comma grouping and at most two
// fractional digits, trailing zeros trimmed. Values whose pre-rounding
// would overflow are rendered as is, their fractional part being
// meaningless at that magnitude anyway.
func formatNumber(value float64) string {
	// NaN and infinities fail this comparison and pass through untouched.
	if math.Abs(value) < math.MaxFloat64/100 {
		value = math.Round(value*100) / 100
	}
	return humanize.CommafWithDigits(value, 2)
}
