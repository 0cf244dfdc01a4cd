package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"bilancio/internal/core"
)

// LoadSeed reads transactions from a seed file, one per line in the form
//
//	date;kind;amount;label
//
// with date as YYYY-MM-DD. Blank lines and lines starting with '#' are
// skipped, as are rows that fail parsing or validation. Returns how many
// rows were loaded.
func (s *Store) LoadSeed(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	loaded := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s.addSeedLine(line) {
			loaded++
		}
	}
	if err := sc.Err(); err != nil {
		return loaded, fmt.Errorf("read seed file: %w", err)
	}
	return loaded, nil
}

func (s *Store) addSeedLine(line string) bool {
	parts := strings.SplitN(line, ";", 4)
	if len(parts) != 4 {
		return false
	}
	day, err := time.Parse("2006-01-02", strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	kind, err := core.ParseKind(parts[1])
	if err != nil {
		return false
	}
	amount, err := core.ParseAmount(parts[2])
	if err != nil {
		return false
	}
	label := strings.TrimSpace(parts[3])
	if _, err := s.Add(amount, label, core.Date{Time: day}, kind); err != nil {
		return false
	}
	return true
}
