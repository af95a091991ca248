/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytequantity

import (
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shie1/bytes/units/size"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewDefaults(t *testing.T) {
	q := New(1024)
	assert.Equal(t, float64(1024), q.Bytes())
	assert.Equal(t, Binary, q.PreferredUnitSystem())

	q = NewWithSystem(1024, Decimal)
	assert.Equal(t, float64(1024), q.Bytes())
	assert.Equal(t, Decimal, q.PreferredUnitSystem())

	assert.Equal(t, New(500), FromBytes(500))
}

func TestUnitViews(t *testing.T) {
	q := New(1048576)
	assert.Equal(t, float64(1024), q.KibiBytes())
	assert.Equal(t, float64(1), q.MebiBytes())
	assert.Equal(t, 1048.576, q.KiloBytes())
	assert.Equal(t, 1.048576, q.MegaBytes())
}

func TestUnitViewsNeverConflateBases(t *testing.T) {
	random, err := faker.RandomInt(0, 1<<16, 10)
	require.NoError(t, err)
	for i := range random {
		b := float64(random[i]) * size.KiB
		t.Run(fmt.Sprintf("%v_bytes", b), func(t *testing.T) {
			q := New(b)
			assert.Equal(t, b, q.Bytes())
			assert.Equal(t, b/1024, q.KibiBytes())
			assert.Equal(t, b/1000, q.KiloBytes())
			assert.Equal(t, b/size.MiB, q.MebiBytes())
			assert.Equal(t, b/size.MB, q.MegaBytes())
			assert.Equal(t, b/size.BiB, q.BrontoBytes())
		})
	}
}

func TestFactoryRoundTrip(t *testing.T) {
	tests := []struct {
		unit    string
		system  UnitSystem
		factory func(float64) ByteQuantity
		view    func(ByteQuantity) float64
	}{
		{"KiB", Binary, FromKibiBytes, ByteQuantity.KibiBytes},
		{"MiB", Binary, FromMebiBytes, ByteQuantity.MebiBytes},
		{"GiB", Binary, FromGibiBytes, ByteQuantity.GibiBytes},
		{"TiB", Binary, FromTebiBytes, ByteQuantity.TebiBytes},
		{"PiB", Binary, FromPebiBytes, ByteQuantity.PebiBytes},
		{"EiB", Binary, FromExbiBytes, ByteQuantity.ExbiBytes},
		{"ZiB", Binary, FromZebiBytes, ByteQuantity.ZebiBytes},
		{"YiB", Binary, FromYobiBytes, ByteQuantity.YobiBytes},
		{"BiB", Binary, FromBrontoBytes, ByteQuantity.BrontoBytes},
		{"KB", Decimal, FromKiloBytes, ByteQuantity.KiloBytes},
		{"MB", Decimal, FromMegaBytes, ByteQuantity.MegaBytes},
		{"GB", Decimal, FromGigaBytes, ByteQuantity.GigaBytes},
		{"TB", Decimal, FromTeraBytes, ByteQuantity.TeraBytes},
		{"PB", Decimal, FromPetaBytes, ByteQuantity.PetaBytes},
		{"EB", Decimal, FromExaBytes, ByteQuantity.ExaBytes},
		{"ZB", Decimal, FromZettaBytes, ByteQuantity.ZettaBytes},
		{"YB", Decimal, FromYottaBytes, ByteQuantity.YottaBytes},
	}
	random, err := faker.RandomInt(1, 2048, 5)
	require.NoError(t, err)
	for i := range tests {
		test := tests[i]
		t.Run(test.unit, func(t *testing.T) {
			assert.Equal(t, test.system, test.factory(1).PreferredUnitSystem())
			assert.Zero(t, test.view(test.factory(0)))
			for _, r := range random {
				n := float64(r)
				assert.InEpsilon(t, n, test.view(test.factory(n)), 1e-9)
			}
		})
	}
}

func TestFactoryScaling(t *testing.T) {
	assert.Equal(t, float64(1024), FromKibiBytes(1).Bytes())
	assert.Equal(t, float64(1000), FromKiloBytes(1).Bytes())
	assert.Equal(t, float64(1<<20), FromMebiBytes(1).Bytes())
	assert.Equal(t, 1.5*1024, FromKibiBytes(1.5).Bytes())
	assert.Equal(t, float64(1<<90), FromBrontoBytes(1).Bytes())
}

func TestValueObjectSemantics(t *testing.T) {
	// Views are computed, not stored: copies stay consistent and no
	// accessor can change the observed byte count.
	q := FromMebiBytes(2)
	copied := q
	assert.Equal(t, float64(2048), q.KibiBytes())
	assert.Equal(t, float64(2), q.MebiBytes())
	assert.Equal(t, q.Bytes(), copied.Bytes())
	assert.Equal(t, q, copied)
}
