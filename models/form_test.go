// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormData_Accessors(t *testing.T) {
	var empty FormData
	assert.Equal(t, "", empty.Get(FieldAmount))
	assert.False(t, empty.Has(FieldAmount))

	f := FormData{FieldAmount: " 12 ", FieldRemarks: ""}
	assert.True(t, f.Has(FieldAmount))
	assert.False(t, f.Has(FieldRemarks))
	assert.Equal(t, "12", f.Trimmed(FieldAmount))
}

func TestSanitizeAmountInput(t *testing.T) {
	assert.Equal(t, "1234.56", SanitizeAmountInput("₹1,234.56"))
	assert.Equal(t, "1.23", SanitizeAmountInput("1.2.3"))
	assert.Equal(t, "", SanitizeAmountInput("abc"))
}

func TestSanitizeMobileInput(t *testing.T) {
	assert.Equal(t, "9876543210", SanitizeMobileInput("(98765) 43210"))
	assert.Equal(t, "9876543210", SanitizeMobileInput("98765432109999"))
	assert.Equal(t, "123", SanitizeMobileInput("1a2b3c"))
}
