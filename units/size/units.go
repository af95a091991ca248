// Package size define common size units
package size

import "github.com/shie1/bytes/units/multiplication"

const (
	B = 1

	KB = multiplication.Kilo * B
	MB = multiplication.Mega * B
	GB = multiplication.Giga * B
	TB = multiplication.Tera * B
	PB = multiplication.Peta * B
	EB = multiplication.Exa * B
	ZB = multiplication.Zeta * B
	YB = multiplication.Yotta * B

	KiB = multiplication.Kibi * B
	MiB = multiplication.Mebi * B
	GiB = multiplication.Gibi * B
	TiB = multiplication.Tebi * B
	PiB = multiplication.Pebi * B
	EiB = multiplication.Exbi * B
	ZiB = multiplication.Zebi * B
	YiB = multiplication.Yobi * B

	// BiB is the informal "Brontobyte", one tier above YiB.
	BiB = multiplication.Bronto * B
)
