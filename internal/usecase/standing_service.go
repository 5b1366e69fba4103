package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

// Export formats accepted by ExportCSV.
const (
	ExportFormatSimple   = "simple"
	ExportFormatExtended = "extended"
)

const csvMinColumns = 4

type StandingService struct {
	zoneRepo     zone.Repository
	teamRepo     team.Repository
	standingRepo standing.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewStandingService(
	zoneRepo zone.Repository,
	teamRepo team.Repository,
	standingRepo standing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &StandingService{
		zoneRepo:     zoneRepo,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

// ListByZone returns the zone's table sorted by points, goal difference and
// goals for, in that order.
func (s *StandingService) ListByZone(ctx context.Context, zoneID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByZone")
	defer span.End()

	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return []standing.Standing{}, nil
	}

	_, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	rows, err := s.standingRepo.ListByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list standings by zone: %w", err)
	}
	standing.SortTable(rows)

	return rows, nil
}

type CreateStandingInput struct {
	TeamID string
	ZoneID string
}

// Create opens a table row for the team in the zone. When a row for the pair
// already exists it is returned as is, stats intact.
func (s *StandingService) Create(ctx context.Context, input CreateStandingInput) (standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.ZoneID = strings.TrimSpace(input.ZoneID)

	t, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return standing.Standing{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}
	z, exists, err := s.zoneRepo.GetByID(ctx, input.ZoneID)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return standing.Standing{}, fmt.Errorf("%w: zone=%s", ErrNotFound, input.ZoneID)
	}

	if existing, found, err := s.standingRepo.GetByTeamAndZone(ctx, t.ID, z.ID); err != nil {
		return standing.Standing{}, fmt.Errorf("get standing by team and zone: %w", err)
	} else if found {
		return existing, nil
	}

	standingID, err := s.idGen.NewID("standing")
	if err != nil {
		return standing.Standing{}, fmt.Errorf("generate standing id: %w", err)
	}

	item, err := s.standingRepo.Upsert(ctx, standing.Standing{
		ID:         standingID,
		TeamID:     t.ID,
		LeagueID:   z.LeagueID,
		CategoryID: z.CategoryID,
		ZoneID:     z.ID,
	})
	if err != nil {
		return standing.Standing{}, fmt.Errorf("upsert standing: %w", err)
	}

	return item, nil
}

type UpdateStandingInput struct {
	Points       *int
	Played       *int
	Won          *int
	Drawn        *int
	Lost         *int
	GoalsFor     *int
	GoalsAgainst *int
}

// Update applies a manual correction to a single table row.
func (s *StandingService) Update(ctx context.Context, standingID string, input UpdateStandingInput) (standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Update")
	defer span.End()

	item, exists, err := s.standingRepo.GetByID(ctx, strings.TrimSpace(standingID))
	if err != nil {
		return standing.Standing{}, fmt.Errorf("get standing: %w", err)
	}
	if !exists {
		return standing.Standing{}, fmt.Errorf("%w: standing=%s", ErrNotFound, standingID)
	}

	for _, field := range []struct {
		src *int
		dst *int
	}{
		{input.Points, &item.Points},
		{input.Played, &item.Played},
		{input.Won, &item.Won},
		{input.Drawn, &item.Drawn},
		{input.Lost, &item.Lost},
		{input.GoalsFor, &item.GoalsFor},
		{input.GoalsAgainst, &item.GoalsAgainst},
	} {
		if field.src == nil {
			continue
		}
		if *field.src < 0 {
			return standing.Standing{}, fmt.Errorf("%w: standings values must be non-negative", ErrInvalidInput)
		}
		*field.dst = *field.src
	}

	updated, err := s.standingRepo.Update(ctx, item)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("update standing: %w", err)
	}
	if !updated {
		return standing.Standing{}, fmt.Errorf("%w: standing=%s", ErrNotFound, standingID)
	}

	return item, nil
}

func (s *StandingService) Delete(ctx context.Context, standingID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Delete")
	defer span.End()

	deleted, err := s.standingRepo.Delete(ctx, strings.TrimSpace(standingID))
	if err != nil {
		return fmt.Errorf("delete standing: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: standing=%s", ErrNotFound, standingID)
	}

	return nil
}

// ImportResult summarizes a CSV import: Applied rows overwrote a standings
// row, Skipped rows had no matching team or unparsable numbers.
type ImportResult struct {
	Applied int
	Skipped int
}

// ImportCSV overwrites played and points for teams named in the payload. The
// expected layout is POS,EQUIPO,PJ,PTS with a header line; extra columns are
// ignored. Team names must match a team in the zone exactly, including case.
func (s *StandingService) ImportCSV(ctx context.Context, zoneID, payload string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ImportCSV")
	defer span.End()

	zoneID = strings.TrimSpace(zoneID)
	_, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return ImportResult{}, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	lines := splitCSVLines(payload)
	if len(lines) < 2 {
		return ImportResult{}, crerr.Mark(
			crerr.New("csv payload has no data rows"),
			ErrInvalidInput,
		)
	}

	teams, err := s.teamRepo.ListByZone(ctx, zoneID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list teams by zone: %w", err)
	}
	byName := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		byName[t.Name] = t
	}

	var result ImportResult
	for i, line := range lines[1:] {
		cols := splitCSVColumns(line)
		if len(cols) < csvMinColumns {
			result.Skipped++
			s.logger.WarnContext(ctx, "csv row skipped, too few columns", "row", i+2)
			continue
		}

		name := cols[1]
		t, ok := byName[name]
		if !ok {
			result.Skipped++
			s.logger.WarnContext(ctx, "csv row skipped, unknown team", "row", i+2, "team_name", name)
			continue
		}

		played, err := strconv.Atoi(cols[2])
		if err != nil {
			result.Skipped++
			s.logger.WarnContext(ctx, "csv row skipped, bad played value", "row", i+2, "value", cols[2])
			continue
		}
		points, err := strconv.Atoi(cols[3])
		if err != nil {
			result.Skipped++
			s.logger.WarnContext(ctx, "csv row skipped, bad points value", "row", i+2, "value", cols[3])
			continue
		}

		row, found, err := s.standingRepo.GetByTeamAndZone(ctx, t.ID, zoneID)
		if err != nil {
			return result, fmt.Errorf("get standing by team and zone: %w", err)
		}
		if !found {
			standingID, err := s.idGen.NewID("standing")
			if err != nil {
				return result, fmt.Errorf("generate standing id: %w", err)
			}
			row = standing.Standing{
				ID:         standingID,
				TeamID:     t.ID,
				LeagueID:   t.LeagueID,
				CategoryID: t.CategoryID,
				ZoneID:     t.ZoneID,
			}
		}
		row.Played = played
		row.Points = points

		if _, err := s.standingRepo.Upsert(ctx, row); err != nil {
			return result, fmt.Errorf("upsert standing: %w", err)
		}
		result.Applied++
	}

	s.logger.InfoContext(ctx, "csv import finished",
		"zone_id", zoneID,
		"applied", result.Applied,
		"skipped", result.Skipped,
	)

	return result, nil
}

// ExportFile is a rendered CSV ready to serve as a download.
type ExportFile struct {
	Filename string
	Content  []byte
}

// ExportCSV renders the zone's sorted table. The simple format carries
// position, team, played and points; the extended format adds the full
// win/draw/loss and goal breakdown.
func (s *StandingService) ExportCSV(ctx context.Context, zoneID, format string) (ExportFile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ExportCSV")
	defer span.End()

	if format == "" {
		format = ExportFormatSimple
	}
	if format != ExportFormatSimple && format != ExportFormatExtended {
		return ExportFile{}, fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
	}

	zoneID = strings.TrimSpace(zoneID)
	z, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return ExportFile{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return ExportFile{}, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	rows, err := s.standingRepo.ListByZone(ctx, zoneID)
	if err != nil {
		return ExportFile{}, fmt.Errorf("list standings by zone: %w", err)
	}
	standing.SortTable(rows)

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		t, found, err := s.teamRepo.GetByID(ctx, row.TeamID)
		if err != nil {
			return ExportFile{}, fmt.Errorf("get team: %w", err)
		}
		if found {
			names[row.TeamID] = t.Name
		} else {
			names[row.TeamID] = row.TeamID
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var filename string
	switch format {
	case ExportFormatExtended:
		filename = fmt.Sprintf("posiciones_%s_%s_%s.csv", z.LeagueID, z.CategoryID, z.ID)
		buf.WriteString("POS,EQUIPO,PJ,G,E,P,GF,GC,DIF,PTS\n")
		for i, row := range rows {
			fmt.Fprintf(buf, "%d,%s,%d,%d,%d,%d,%d,%d,%d,%d\n",
				i+1, names[row.TeamID], row.Played, row.Won, row.Drawn, row.Lost,
				row.GoalsFor, row.GoalsAgainst, row.GoalDifference(), row.Points)
		}
	default:
		filename = fmt.Sprintf("standings_%s.csv", z.ID)
		buf.WriteString("POS,EQUIPO,PJ,PTS\n")
		for i, row := range rows {
			fmt.Fprintf(buf, "%d,%s,%d,%d\n", i+1, names[row.TeamID], row.Played, row.Points)
		}
	}

	content := make([]byte, buf.Len())
	copy(content, buf.B)

	return ExportFile{Filename: filename, Content: content}, nil
}

// splitCSVLines breaks the payload into non-empty lines, tolerating CRLF
// endings and a trailing newline.
func splitCSVLines(payload string) []string {
	raw := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// splitCSVColumns splits on commas and strips whitespace plus one layer of
// surrounding double quotes per cell. Embedded commas inside quotes are not
// supported; the export never produces them.
func splitCSVColumns(line string) []string {
	cols := strings.Split(line, ",")
	for i, col := range cols {
		col = strings.TrimSpace(col)
		if len(col) >= 2 && strings.HasPrefix(col, `"`) && strings.HasSuffix(col, `"`) {
			col = col[1 : len(col)-1]
		}
		cols[i] = strings.TrimSpace(col)
	}

	return cols
}
