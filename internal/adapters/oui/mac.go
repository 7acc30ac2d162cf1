package oui

import (
	"fmt"
	"net"
	"strings"
)

// Prefix returns the OUI of mac in "XX:XX:XX" form.
func Prefix(mac string) (string, error) {
	hw, err := net.ParseMAC(strings.ReplaceAll(mac, "-", ":"))
	if err != nil || len(hw) < 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMAC, mac)
	}
	return fmt.Sprintf("%02X:%02X:%02X", hw[0], hw[1], hw[2]), nil
}

// IsLocallyAdministered reports whether the LAA bit (0x02 of the first
// octet) is set. Such addresses carry no registered vendor.
func IsLocallyAdministered(mac string) bool {
	hw, err := net.ParseMAC(strings.ReplaceAll(mac, "-", ":"))
	if err != nil || len(hw) == 0 {
		return false
	}
	return hw[0]&0x02 != 0
}

// normalizePrefix converts "xx-xx-xx", "xx:xx:xx" or "xxxxxx" to "XX:XX:XX".
// ok is false when s is not six hex digits.
func normalizePrefix(s string) (string, bool) {
	s = strings.ToUpper(strings.NewReplacer("-", "", ":", "", ".", "").Replace(strings.TrimSpace(s)))
	if len(s) != 6 {
		return "", false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789ABCDEF", c) {
			return "", false
		}
	}
	return s[0:2] + ":" + s[2:4] + ":" + s[4:6], true
}
