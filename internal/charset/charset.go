// Package charset builds the password character pool from enabled
// character classes.
package charset

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{}|;:,.<>?/~`\\"
)

// Options selects which character classes contribute to the pool.
type Options struct {
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// Build concatenates the alphabets of the enabled classes in declaration
// order: lowercase, uppercase, digits, symbols. The result is empty when no
// class is enabled; with every class enabled it is 92 characters.
func Build(opts Options) string {
	var pool string
	if opts.Lowercase {
		pool += Lowercase
	}
	if opts.Uppercase {
		pool += Uppercase
	}
	if opts.Numbers {
		pool += Digits
	}
	if opts.Symbols {
		pool += Symbols
	}
	return pool
}
