package curated

import (
	"fmt"
	"strconv"

	"championship-pipeline/core/table"
	"championship-pipeline/feature/country"
	"championship-pipeline/feature/registry"
	"championship-pipeline/feature/transfermarkt"

	"go.uber.org/zap"
)

// Builder turns raw extracts into semantic tables. All builders are pure
// with respect to their inputs; persistence lives in the Service.
type Builder struct {
	reg *registry.Registry
	att *registry.Attacher
	log *zap.Logger
}

// NewBuilder creates a builder over the given registry.
func NewBuilder(reg *registry.Registry, log *zap.Logger) *Builder {
	return &Builder{reg: reg, att: registry.NewAttacher(reg, log), log: log}
}

// PlayerStats attaches canonical club identity to the FBRef player stats and
// normalizes the nationality codes to full country names. The source is
// closed-world, so an unknown squad label aborts the build.
func (b *Builder) PlayerStats(players *table.Table) (*table.Table, error) {
	out, _, err := b.att.Attach(players, "squad", registry.SourceFBRefSquad, registry.Strict)
	if err != nil {
		return nil, fmt.Errorf("player stats semantic: %w", err)
	}

	out.RenameColumn("player", "player_name")
	out.RenameColumn("nation", "nationality")
	out.RenameColumn("pos", "position")
	if out.HasColumn("nationality") {
		for row := 0; row < out.Len(); row++ {
			if nat := out.Get(row, "nationality"); nat != "" {
				if err := out.Set(row, "nationality", country.Normalize(nat)); err != nil {
					return nil, err
				}
			}
		}
	}
	out.DropColumn("rk")
	return out, nil
}

// TransfersIn builds the semantic transfers-in table: canonical club identity
// for the Championship side, snake_case columns, parsed fees, normalized
// nationalities, and counterparty names standardized where they are also
// Championship clubs.
func (b *Builder) TransfersIn(in *table.Table) (*table.Table, error) {
	return b.transfersSemantic(in, transfermarkt.ColIn, transfermarkt.ColLeft, "from_club_name")
}

// TransfersOut is the outbound counterpart of TransfersIn.
func (b *Builder) TransfersOut(out *table.Table) (*table.Table, error) {
	return b.transfersSemantic(out, transfermarkt.ColOut, transfermarkt.ColJoined, "to_club_name")
}

func (b *Builder) transfersSemantic(t *table.Table, playerCol, otherCol, otherName string) (*table.Table, error) {
	out, _, err := b.att.Attach(t, transfermarkt.ColTransferClub, registry.SourceTransfers, registry.Strict)
	if err != nil {
		return nil, fmt.Errorf("transfers semantic: %w", err)
	}

	out.RenameColumn(playerCol, "player_name")
	out.RenameColumn(transfermarkt.ColAge, "age")
	out.RenameColumn(transfermarkt.ColNationality, "nationality")
	out.RenameColumn(transfermarkt.ColPosition, "position")
	out.RenameColumn(transfermarkt.ColMarketValue, "market_value")
	out.RenameColumn(otherCol, otherName)
	out.RenameColumn(transfermarkt.ColFee, "fee_raw")

	fees := make([]string, out.Len())
	for row := 0; row < out.Len(); row++ {
		if nat := out.Get(row, "nationality"); nat != "" {
			if err := out.Set(row, "nationality", country.Normalize(nat)); err != nil {
				return nil, err
			}
		}
		// Counterparties are open-world: standardize the ones we know,
		// keep the raw string for everyone else.
		if canonical, ok := b.reg.Standardize(out.Get(row, otherName)); ok {
			if err := out.Set(row, otherName, canonical); err != nil {
				return nil, err
			}
		}
		fees[row] = formatEUR(ParseFee(out.Get(row, "fee_raw")))
	}
	if err := out.AddColumn("fee_eur", fees); err != nil {
		return nil, err
	}
	return out, nil
}

// LeagueEnhanced joins the league table with the squad stats and the
// transfer-window aggregates of both semantic transfer tables.
func (b *Builder) LeagueEnhanced(league, squad, transfersIn, transfersOut *table.Table) (*table.Table, error) {
	base, _, err := b.att.Attach(league, transfermarkt.ColClub, registry.SourceLeague, registry.Strict)
	if err != nil {
		return nil, fmt.Errorf("league enhanced: %w", err)
	}

	coerceNumeric(base, transfermarkt.ColRank, transfermarkt.ColPlayed, transfermarkt.ColWins,
		transfermarkt.ColDraws, transfermarkt.ColLosses, transfermarkt.ColGD, transfermarkt.ColPoints)

	goalsFor := make([]string, base.Len())
	goalsAgainst := make([]string, base.Len())
	for row := 0; row < base.Len(); row++ {
		if gf, ga, ok := ParseGoals(base.Get(row, transfermarkt.ColGoals)); ok {
			goalsFor[row], goalsAgainst[row] = gf, ga
		}
	}
	if err := base.AddColumn("goals_for", goalsFor); err != nil {
		return nil, err
	}
	if err := base.AddColumn("goals_against", goalsAgainst); err != nil {
		return nil, err
	}

	squadAttached, _, err := b.att.Attach(squad, "squad", registry.SourceFBRefSquad, registry.Strict)
	if err != nil {
		return nil, fmt.Errorf("league enhanced: squad stats: %w", err)
	}
	squadAttached.DropColumn("club")
	for _, col := range squadAttached.Columns() {
		if col != registry.ColClubID {
			squadAttached.RenameColumn(col, "squad_"+col)
		}
	}

	enhanced, err := base.JoinLeft(squadAttached, registry.ColClubID)
	if err != nil {
		return nil, fmt.Errorf("league enhanced: join squad stats: %w", err)
	}

	inAgg := aggregateTransfers(transfersIn, "transfers_in_count", "transfers_in_fees")
	outAgg := aggregateTransfers(transfersOut, "transfers_out_count", "transfers_out_fees")
	if enhanced, err = enhanced.JoinLeft(inAgg, registry.ColClubID); err != nil {
		return nil, fmt.Errorf("league enhanced: join transfers in: %w", err)
	}
	if enhanced, err = enhanced.JoinLeft(outAgg, registry.ColClubID); err != nil {
		return nil, fmt.Errorf("league enhanced: join transfers out: %w", err)
	}

	// Clubs without a transfer window still get zeros, not blanks.
	zeroFill(enhanced, "transfers_in_count", "transfers_in_fees", "transfers_out_count", "transfers_out_fees")

	netSpend := make([]string, enhanced.Len())
	for row := 0; row < enhanced.Len(); row++ {
		in, _ := strconv.ParseFloat(enhanced.Get(row, "transfers_in_fees"), 64)
		out, _ := strconv.ParseFloat(enhanced.Get(row, "transfers_out_fees"), 64)
		netSpend[row] = formatEUR(in - out)
	}
	if err := enhanced.AddColumn("net_spend_eur", netSpend); err != nil {
		return nil, err
	}

	enhanced.Reorder(registry.ColClubID, "club")
	return enhanced, nil
}

// aggregateTransfers groups a semantic transfer table by club_id into a
// distinct player count and a fee sum, in first-seen club order.
func aggregateTransfers(t *table.Table, countCol, feesCol string) *table.Table {
	type agg struct {
		players map[string]bool
		fees    float64
	}
	byClub := make(map[string]*agg)
	var order []string

	for row := 0; row < t.Len(); row++ {
		id := t.Get(row, registry.ColClubID)
		if id == "" {
			continue
		}
		a, ok := byClub[id]
		if !ok {
			a = &agg{players: make(map[string]bool)}
			byClub[id] = a
			order = append(order, id)
		}
		a.players[t.Get(row, "player_name")] = true
		fee, _ := strconv.ParseFloat(t.Get(row, "fee_eur"), 64)
		a.fees += fee
	}

	out := table.New(registry.ColClubID, countCol, feesCol)
	for _, id := range order {
		a := byClub[id]
		out.AppendRecord(map[string]string{
			registry.ColClubID: id,
			countCol:           strconv.Itoa(len(a.players)),
			feesCol:            formatEUR(a.fees),
		})
	}
	return out
}

// coerceNumeric blanks cells that do not parse as numbers, after stripping
// thousands separators.
func coerceNumeric(t *table.Table, cols ...string) {
	for _, col := range cols {
		if !t.HasColumn(col) {
			continue
		}
		for row := 0; row < t.Len(); row++ {
			v := t.Get(row, col)
			cleaned := ""
			if v != "" {
				s := stripCommas(v)
				if _, err := strconv.ParseFloat(s, 64); err == nil {
					cleaned = s
				}
			}
			_ = t.Set(row, col, cleaned)
		}
	}
}

func stripCommas(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func zeroFill(t *table.Table, cols ...string) {
	for _, col := range cols {
		if !t.HasColumn(col) {
			continue
		}
		for row := 0; row < t.Len(); row++ {
			if t.Get(row, col) == "" {
				_ = t.Set(row, col, "0")
			}
		}
	}
}
