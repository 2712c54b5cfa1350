package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotLayout is the key format of a daily balance entry: ISO-8601 with
// seconds, no zone, UTC.
const SnapshotLayout = "2006-01-02T15:04:05"

// BalanceSnapshot is one entry of the balance history.
type BalanceSnapshot struct {
	At      string
	Balance decimal.Decimal
}

// DailyBalances is the balance history in chronological order. A nil value
// means the account has no history yet. Keys are unique; recording twice in
// the same second overwrites the earlier value in place.
//
// It encodes as a JSON object whose key order is the insertion order.
type DailyBalances []BalanceSnapshot

// Record returns the history with balance stored under now's key.
func (d DailyBalances) Record(now time.Time, balance decimal.Decimal) DailyBalances {
	return d.put(now.UTC().Format(SnapshotLayout), balance)
}

func (d DailyBalances) put(key string, balance decimal.Decimal) DailyBalances {
	for i := range d {
		if d[i].At == key {
			d[i].Balance = balance
			return d
		}
	}
	if d == nil {
		d = make(DailyBalances, 0, 1)
	}
	return append(d, BalanceSnapshot{At: key, Balance: balance})
}

// Average returns the arithmetic mean rounded half-up to 2 places.
// ok is false when the history is empty.
func (d DailyBalances) Average() (avg decimal.Decimal, ok bool) {
	if len(d) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, s := range d {
		sum = sum.Add(s.Balance)
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(d))), 2), true
}

// Latest returns the most recent snapshot.
func (d DailyBalances) Latest() (BalanceSnapshot, bool) {
	if len(d) == 0 {
		return BalanceSnapshot{}, false
	}
	return d[len(d)-1], true
}

func (d DailyBalances) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.At)
		if err != nil {
			return nil, err
		}
		val, err := s.Balance.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *DailyBalances) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("daily balances: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("daily balances: expected object, got %v", tok)
	}

	out := make(DailyBalances, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("daily balances: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("daily balances: expected key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("daily balances %s: %w", key, err)
		}
		var bal decimal.Decimal
		if err := bal.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("daily balances %s: %w", key, err)
		}
		out = out.put(key, bal)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("daily balances: %w", err)
	}

	*d = out
	return nil
}
