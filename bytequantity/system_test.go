/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package bytequantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shie1/bytes/commonerrors"
	"github.com/shie1/bytes/commonerrors/errortest"
)

func TestUnitSystemString(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "decimal", Decimal.String())
	assert.Equal(t, "unknown", UnitSystem(12).String())
}

func TestUnitSystemBase(t *testing.T) {
	base, err := Binary.Base()
	require.NoError(t, err)
	assert.Equal(t, float64(1024), base)

	base, err = Decimal.Base()
	require.NoError(t, err)
	assert.Equal(t, float64(1000), base)

	_, err = UnitSystem(12).Base()
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestUnitSystemZeroValueIsBinary(t *testing.T) {
	var system UnitSystem
	assert.Equal(t, Binary, system)
}
