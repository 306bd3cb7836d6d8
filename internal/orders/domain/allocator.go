package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const orderIDPrefix = "ORD-"

// NextOrderID derives the next identifier from the current collection:
// the maximum numeric suffix plus one, zero-padded to three digits. The
// format does not truncate past three digits. It is a pure function of the
// live collection, not a persisted counter, so it tolerates out-of-band
// edits to the backing store.
func NextOrderID(orders []Order) (string, error) {
	maxNum := 0
	for _, o := range orders {
		n, err := parseOrderID(o.OrderID)
		if err != nil {
			return "", err
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("%s%03d", orderIDPrefix, maxNum+1), nil
}

// parseOrderID extracts the numeric suffix of an identifier, failing fast
// on anything that does not match ORD-<digits>.
func parseOrderID(orderID string) (int, error) {
	suffix, ok := strings.CutPrefix(orderID, orderIDPrefix)
	if !ok || suffix == "" {
		return 0, NewMalformedOrderID(orderID)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, NewMalformedOrderID(orderID)
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, NewMalformedOrderID(orderID)
	}
	return n, nil
}
