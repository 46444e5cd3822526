// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Layouts of the en-IN presentation and of form date values.
const (
	DateLayout     = "2/1/2006"
	DateTimeLayout = "2/1/2006, 3:04:05 pm"
	FormDateLayout = "2006-01-02"
)

const rupeeSign = "₹"

// FormatCurrency renders rupees in the en-IN INR style, e.g. 123456.78 as
// "₹1,23,456.78" and -5 as "-₹5.00". The value is rounded half away from
// zero to paise.
func FormatCurrency(rupees float64) string {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return rupeeSign + "NaN"
	}

	return formatPaise(int64(math.Round(rupees * 100)))
}

// FormatAmount renders an [models.Amount] the same way as [FormatCurrency]
// without going through float64.
func FormatAmount(a models.Amount) string {
	return formatPaise(a.Paise)
}

func formatPaise(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	return fmt.Sprintf("%s%s%s.%02d", sign, rupeeSign, groupIndian(strconv.FormatInt(paise/100, 10)), paise%100)
}

// groupIndian inserts separators the lakh/crore way: the last three digits
// form one group, every group to the left of it has two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}

// FormatDate renders t as day/month/year without padding, e.g. "5/1/2026".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders t as e.g. "5/1/2026, 3:04:05 pm".
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate parses a YYYY-MM-DD form value as midnight in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(FormDateLayout, strings.TrimSpace(s), time.Local)
}

// FormatFormDate renders t as a YYYY-MM-DD form value.
func FormatFormDate(t time.Time) string {
	return t.Format(FormDateLayout)
}

// FormatTimestamp renders a backend timestamp with [FormatDateTime]. Values
// that are not RFC 3339 are returned unchanged.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return FormatDateTime(t.Local())
}

// FormatEntryDate renders a YYYY-MM-DD value, or the date part of an
// RFC 3339 timestamp, with [FormatDate]. Anything else is returned
// unchanged.
func FormatEntryDate(raw string) string {
	if t, err := ParseDate(raw); err == nil {
		return FormatDate(t)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return FormatDate(t.Local())
	}

	return raw
}
