/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytequantity

import (
	"github.com/shie1/bytes/commonerrors"
)

// UnitSystem identifies the family of units used when scaling a byte
// quantity: binary units (IEC 80000-13, base 1024) or decimal units
// (SI, base 1000).
type UnitSystem int

const (
	// Binary is the IEC base-1024 unit family (KiB, MiB, ...). It is the
	// zero value and the default system of quantities built without an
	// explicit one.
	Binary UnitSystem = iota
	// Decimal is the SI base-1000 unit family (KB, MB, ...).
	Decimal
)

func (s UnitSystem) String() string {
	switch s {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Base returns the multiplication base separating two consecutive unit
// tiers of the system.
func (s UnitSystem) Base() (float64, error) {
	switch s {
	case Binary:
		return 1024, nil
	case Decimal:
		return 1000, nil
	default:
		return 0, commonerrors.Newf(commonerrors.ErrInvalid, "unknown unit system [%d]", int(s))
	}
}

// labels returns the ordered unit names of the system, starting at plain
// bytes. The binary family carries the extra informal Bronto tier.
func (s UnitSystem) labels() ([]string, error) {
	switch s {
	case Binary:
		return []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB", "BiB"}, nil
	case Decimal:
		return []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}, nil
	default:
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown unit system [%d]", int(s))
	}
}
