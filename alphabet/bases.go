package alphabet

// Master digit strings for the named alphabets.
const (
	digitsBase36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitsBase64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	digitsURI    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// The standard alphabets. See the package document for the full table.
var (
	Binary  = MustNew(digitsBase36, 2, true, '-', ' ')
	Octal   = MustNew(digitsBase36, 8, true, '-', ' ')
	Decimal = MustNew(digitsBase36, 10, true, '-', ' ')
	Hex     = MustNew(digitsBase36, 16, true, '-', ' ')
	Base36  = MustNew(digitsBase36, 36, true, '-', ' ')
	Base64  = MustNew(digitsBase64, 64, false, '-', ' ')
	URISafe = MustNew(digitsURI, 64, false, '!', ' ')
)
