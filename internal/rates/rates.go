// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rates loads the engineering hourly-rate table from a plain-text
// file. Each non-empty line is `<role words...> <rate>`: the last
// whitespace-separated token must parse as a number, everything before it
// joins to form the role name. Failures never surface as errors; they
// degrade to a built-in default table.
package rates

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Default is the built-in fallback table used when the rate file is missing,
// unreadable, or contains no parsable lines.
var Default = map[string]float64{
	"Frontend Engineer": 10,
	"Backend Engineer":  7,
	"Database Engineer": 12,
	"Cloud Engineer":    15,
	"Testing Engineer":  7,
}

// Load reads the rate table at path. Malformed lines are skipped, not fatal.
// If the result would be empty, Load returns a copy of Default instead.
// Every call re-reads the file; there is no caching.
func Load(path string) map[string]float64 {
	table := make(map[string]float64)

	f, err := os.Open(path)
	if err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			role, rate, ok := parseLine(scanner.Text())
			if ok {
				table[role] = rate
			}
		}
		f.Close()
	}

	if len(table) == 0 {
		return defaultCopy()
	}
	return table
}

// parseLine splits one rate-table line into role and rate. A line needs at
// least two fields and a numeric final token; anything else is rejected.
func parseLine(line string) (string, float64, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, false
	}

	rate, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, false
	}

	role := strings.Join(fields[:len(fields)-1], " ")
	return role, rate, true
}

func defaultCopy() map[string]float64 {
	table := make(map[string]float64, len(Default))
	for role, rate := range Default {
		table[role] = rate
	}
	return table
}
