package voucher

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidVoucherCode = errors.New("invalid voucher code format")

// Codes are case-sensitive identifiers: "SUMMER24" and "summer24" are
// different vouchers upstream, so no normalization happens here.
var voucherCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !voucherCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidVoucherCode
	}
	return Code(code), nil
}

func (c Code) Validate() error {
	_, err := NewCode(string(c))
	return err
}

func (c Code) String() string {
	return string(c)
}

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 8
)

// GenerateCode produces a fresh 8-character code for the create form's
// "Generate" action.
func GenerateCode() Code {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// constant rather than panicking in a UI helper.
		return Code(strings.Repeat("A", codeLength))
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return Code(buf)
}
