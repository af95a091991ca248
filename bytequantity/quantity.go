/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bytequantity defines an immutable value object describing an
// amount of digital information, with conversions between binary
// (IEC, base-1024) and decimal (SI, base-1000) units and human-readable
// rendering.
package bytequantity

import (
	"github.com/shie1/bytes/units/size"
)

// ByteQuantity holds a raw byte count together with the preferred unit
// system used when formatting it. It is a plain value object: all unit
// views are computed from the stored count on every read and no method
// mutates it.
//
// The byte count is stored as given. No validation of negativity or
// non-finiteness is performed; such values flow unchanged through the
// unit views and callers wanting stricter behaviour should check before
// construction.
type ByteQuantity struct {
	bytes  float64
	system UnitSystem
}

// New returns a quantity of `bytes` bytes preferring binary units.
func New(bytes float64) ByteQuantity {
	return NewWithSystem(bytes, Binary)
}

// NewWithSystem returns a quantity of `bytes` bytes preferring the given
// unit system when formatting.
func NewWithSystem(bytes float64, system UnitSystem) ByteQuantity {
	return ByteQuantity{bytes: bytes, system: system}
}

// FromBytes is equivalent to New but explicit about the quantity being a
// raw byte count.
func FromBytes(bytes float64) ByteQuantity { return New(bytes) }

// FromKibiBytes returns a quantity of `quantity` KiB (1024 bytes each).
func FromKibiBytes(quantity float64) ByteQuantity { return New(quantity * size.KiB) }

// FromMebiBytes returns a quantity of `quantity` MiB.
func FromMebiBytes(quantity float64) ByteQuantity { return New(quantity * size.MiB) }

// FromGibiBytes returns a quantity of `quantity` GiB.
func FromGibiBytes(quantity float64) ByteQuantity { return New(quantity * size.GiB) }

// FromTebiBytes returns a quantity of `quantity` TiB.
func FromTebiBytes(quantity float64) ByteQuantity { return New(quantity * size.TiB) }

// FromPebiBytes returns a quantity of `quantity` PiB.
func FromPebiBytes(quantity float64) ByteQuantity { return New(quantity * size.PiB) }

// FromExbiBytes returns a quantity of `quantity` EiB.
func FromExbiBytes(quantity float64) ByteQuantity { return New(quantity * size.EiB) }

// FromZebiBytes returns a quantity of `quantity` ZiB.
func FromZebiBytes(quantity float64) ByteQuantity { return New(quantity * size.ZiB) }

// FromYobiBytes returns a quantity of `quantity` YiB.
func FromYobiBytes(quantity float64) ByteQuantity { return New(quantity * size.YiB) }

// FromBrontoBytes returns a quantity of `quantity` Brontobytes (1024^9
// bytes each, one binary tier above YiB).
func FromBrontoBytes(quantity float64) ByteQuantity { return New(quantity * size.BiB) }

// FromKiloBytes returns a quantity of `quantity` KB (1000 bytes each),
// preferring decimal units.
func FromKiloBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.KB, Decimal) }

// FromMegaBytes returns a quantity of `quantity` MB, preferring decimal units.
func FromMegaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.MB, Decimal) }

// FromGigaBytes returns a quantity of `quantity` GB, preferring decimal units.
func FromGigaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.GB, Decimal) }

// FromTeraBytes returns a quantity of `quantity` TB, preferring decimal units.
func FromTeraBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.TB, Decimal) }

// FromPetaBytes returns a quantity of `quantity` PB, preferring decimal units.
func FromPetaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.PB, Decimal) }

// FromExaBytes returns a quantity of `quantity` EB, preferring decimal units.
func FromExaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.EB, Decimal) }

// FromZettaBytes returns a quantity of `quantity` ZB, preferring decimal units.
func FromZettaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.ZB, Decimal) }

// FromYottaBytes returns a quantity of `quantity` YB, preferring decimal units.
func FromYottaBytes(quantity float64) ByteQuantity { return NewWithSystem(quantity*size.YB, Decimal) }

// Bytes returns the raw byte count.
func (q ByteQuantity) Bytes() float64 { return q.bytes }

// PreferredUnitSystem returns the unit system used by default when
// formatting the quantity.
func (q ByteQuantity) PreferredUnitSystem() UnitSystem { return q.system }

// Binary views, base 1024.

func (q ByteQuantity) KibiBytes() float64 { return q.bytes / size.KiB }
func (q ByteQuantity) MebiBytes() float64 { return q.bytes / size.MiB }
func (q ByteQuantity) GibiBytes() float64 { return q.bytes / size.GiB }
func (q ByteQuantity) TebiBytes() float64 { return q.bytes / size.TiB }
func (q ByteQuantity) PebiBytes() float64 { return q.bytes / size.PiB }
func (q ByteQuantity) ExbiBytes() float64 { return q.bytes / size.EiB }
func (q ByteQuantity) ZebiBytes() float64 { return q.bytes / size.ZiB }
func (q ByteQuantity) YobiBytes() float64 { return q.bytes / size.YiB }

// BrontoBytes returns the count in the informal Bronto tier (1024^9).
func (q ByteQuantity) BrontoBytes() float64 { return q.bytes / size.BiB }

// Decimal views, base 1000.

func (q ByteQuantity) KiloBytes() float64 { return q.bytes / size.KB }
func (q ByteQuantity) MegaBytes() float64 { return q.bytes / size.MB }
func (q ByteQuantity) GigaBytes() float64 { return q.bytes / size.GB }
func (q ByteQuantity) TeraBytes() float64 { return q.bytes / size.TB }
func (q ByteQuantity) PetaBytes() float64 { return q.bytes / size.PB }
func (q ByteQuantity) ExaBytes() float64 { return q.bytes / size.EB }
func (q ByteQuantity) ZettaBytes() float64 { return q.bytes / size.ZB }
func (q ByteQuantity) YottaBytes() float64 { return q.bytes / size.YB }
