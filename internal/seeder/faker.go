package seeder

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const year = 365 * 24 * time.Hour

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// hexUpper returns n random bytes as upper-case hex.
func hexUpper(src random.Source, n int) string {
	return strings.ToUpper(hex.EncodeToString(src.Bytes(n)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// charmPrice picks a price above costCents+50 that is either a whole amount
// or one cent below one.
func charmPrice(src random.Source, costCents int) float64 {
	lo := costCents + 50
	hi := 2 * costCents
	if hi <= lo {
		hi = lo + 1
	}
	v := src.Int(lo, hi)

	var cents int
	if src.Chance(0.3) {
		cents = v / 100 * 100
	} else {
		cents = (v+99)/100*100 - 1
	}
	if cents < lo {
		cents += 100
	}
	return float64(cents) / 100
}

// dateChain draws the optional updated and deleted stamps that follow created.
func dateChain(src random.Source, created, now time.Time) (updated, deleted *time.Time) {
	if src.Chance(0.5) {
		u := src.Date(created, now)
		updated = &u
	}
	if src.Chance(0.1) {
		from := created
		if updated != nil {
			from = *updated
		}
		d := src.Date(from, now)
		deleted = &d
	}
	return updated, deleted
}

// uniqueName suffixes name with a random six digit number until it is not taken.
func uniqueName(src random.Source, name string, taken map[string]bool) string {
	candidate := name
	for taken[candidate] {
		candidate = fmt.Sprintf("%s (%d)", name, src.Int(100000, 1000000))
	}
	taken[candidate] = true
	return candidate
}

// prepare checks the dataset and the dependencies t needs before generation.
func prepare(env Env, ds *dataset.Dataset, t schema.EntityType) (int, error) {
	if ds == nil {
		return 0, apperrors.New(apperrors.CodeInvalidArgument, "the dataset argument is required to generate %s", t)
	}

	count := env.Config.Count(t)
	d, _ := schema.Lookup(t)
	for _, dep := range d.Depends {
		if !ds.Generated(dep) {
			return 0, apperrors.New(apperrors.CodeMissingDependency, "%s requires %s to be generated first", t, dep)
		}
		if count > 0 && ds.Len(dep) == 0 {
			return 0, apperrors.New(apperrors.CodeMissingDependency, "%s requires at least one %s record", t, dep)
		}
	}
	return count, nil
}

// pickID returns a uniform 1-based index into a collection of size n.
func pickID(src random.Source, n int) int {
	return src.Int(1, n+1)
}
