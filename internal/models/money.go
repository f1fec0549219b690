package models

import (
	"fmt"
	"strings"
)

// Money is an amount in minor units (cents). Integer math avoids the float
// drift that plagued earlier per-screen price calculations.
type Money int64

// ParseMoney accepts "1750" or "1750.50" and returns the amount in cents.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var whole, frac int64
	var seenDot bool
	var fracDigits int

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if seenDot {
				return 0, fmt.Errorf("money: bad %q", s)
			}
			seenDot = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("money: bad %q", s)
		}
		d := int64(c - '0')
		if !seenDot {
			whole = whole*10 + d
		} else if fracDigits < 2 {
			frac = frac*10 + d
			fracDigits++
		}
	}
	for fracDigits < 2 {
		frac *= 10
		fracDigits++
	}

	m := Money(whole*100 + frac)
	if neg {
		m = -m
	}
	return m, nil
}

func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MulCeil multiplies by num/den rounding up. Used for hour-derived unit
// prices where partial cents must never undercharge.
func (m Money) MulCeil(num, den int64) Money {
	v := int64(m) * num
	q := v / den
	if v%den != 0 {
		q++
	}
	return Money(q)
}
