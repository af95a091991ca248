// Package multiplication define common multiplication factor prefixes
package multiplication

// Decimal (SI) prefixes.
const (
	Yotta  = 1e24
	Zeta   = 1e21
	Exa    = 1e18
	Peta   = 1e15
	Tera   = 1e12
	Giga   = 1e9
	Mega   = 1e6
	Kilo   = 1e3
	Hector = 1e2
	Deka   = 1e1
	Deci   = 1e-1
	Centi  = 1e-2
	Milli  = 1e-3
	Micro  = 1e-6
	Nano   = 1e-9
	Pico   = 1e-12
	Femto  = 1e-15
	Atto   = 1e-18
	Zepto  = 1e-21
	Yocto  = 1e-24
)

// Binary (IEC 80000-13) prefixes, plus the informal Bronto tier (1024^9).
const (
	Kibi   = float64(1 << 10)
	Mebi   = float64(1 << 20)
	Gibi   = float64(1 << 30)
	Tebi   = float64(1 << 40)
	Pebi   = float64(1 << 50)
	Exbi   = float64(1 << 60)
	Zebi   = float64(1 << 70)
	Yobi   = float64(1 << 80)
	Bronto = float64(1 << 90)
)
