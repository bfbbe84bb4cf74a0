package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasetyowira/footdata/internal/domain/league"
	"github.com/prasetyowira/footdata/internal/platform/logging"
)

// requiredLeagueColumns are the columns a league table must carry
// before it may be persisted.
var requiredLeagueColumns = []string{"league_id", "league_name", "season", "country"}

// ValidationReport counts the rows removed at each validation stage.
type ValidationReport struct {
	Input             int
	DroppedNullKeys   int
	DroppedDuplicates int
	Output            int
}

// ValidateLeagues runs the sequential validation stages over a
// normalized league table: required-column presence (fatal), null
// natural-key rows dropped, exact-duplicate rows dropped. The
// surviving table plus per-stage counts are returned. Re-running the
// validator on its own output drops nothing further.
func ValidateLeagues(ctx context.Context, items []league.Record, logger *logging.Logger) ([]league.Record, ValidationReport, error) {
	if logger == nil {
		logger = logging.Default()
	}

	report := ValidationReport{Input: len(items)}

	if missing := missingLeagueColumns(items); len(missing) > 0 {
		return nil, report, fmt.Errorf("%w: missing required columns: %s", ErrValidation, strings.Join(missing, ", "))
	}

	kept := make([]league.Record, 0, len(items))
	for _, item := range items {
		if item.LeagueID == 0 || item.Season == 0 {
			report.DroppedNullKeys++
			continue
		}
		kept = append(kept, item)
	}
	if report.DroppedNullKeys > 0 {
		logger.WarnContext(ctx, "dropped league rows with null keys", "count", report.DroppedNullKeys)
	}

	seen := make(map[league.Record]struct{}, len(kept))
	out := make([]league.Record, 0, len(kept))
	for _, item := range kept {
		if _, ok := seen[item]; ok {
			report.DroppedDuplicates++
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	if report.DroppedDuplicates > 0 {
		logger.WarnContext(ctx, "dropped duplicate league rows", "count", report.DroppedDuplicates)
	}

	report.Output = len(out)
	return out, report, nil
}

// missingLeagueColumns reports required columns carrying no data at
// all across a non-empty table. A column that is empty on every row
// means the source payload never had the field.
func missingLeagueColumns(items []league.Record) []string {
	if len(items) == 0 {
		return nil
	}

	hasID, hasName, hasSeason, hasCountry := false, false, false, false
	for _, item := range items {
		hasID = hasID || item.LeagueID != 0
		hasName = hasName || item.LeagueName != ""
		hasSeason = hasSeason || item.Season != 0
		hasCountry = hasCountry || item.Country != ""
	}

	present := map[string]bool{
		"league_id":   hasID,
		"league_name": hasName,
		"season":      hasSeason,
		"country":     hasCountry,
	}

	missing := make([]string, 0)
	for _, column := range requiredLeagueColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	return missing
}
