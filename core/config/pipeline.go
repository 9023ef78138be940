package config

// Pipeline holds stage-specific configuration shared by extract, transform
// and load.
type Pipeline struct {
	// Season is the season key used in object paths and table names.
	Season string `mapstructure:"season" default:"2024_25"`
	// RawDataDir is the local directory raw extracts are written to.
	RawDataDir string `mapstructure:"raw_data_dir" default:"data/raw"`
	// FBRefSnapshot is the file name of the saved FBRef HTML page inside
	// RawDataDir. FBRef blocks scrapers, so the page is downloaded by hand.
	FBRefSnapshot string `mapstructure:"fbref_snapshot" default:"fbref_championship_standard_2024_25.html"`
	// TransfermarktBaseURL is the Transfermarkt host to scrape.
	TransfermarktBaseURL string `mapstructure:"transfermarkt_base_url" default:"https://www.transfermarkt.co.uk"`
	// CompetitionCode is the Transfermarkt competition path code.
	CompetitionCode string `mapstructure:"competition_code" default:"GB2"`
	// SeasonID is the Transfermarkt saison_id query value.
	SeasonID string `mapstructure:"season_id" default:"2024"`
	// RequestDelaySeconds is the polite delay between Transfermarkt requests.
	RequestDelaySeconds int `mapstructure:"request_delay_seconds" default:"2"`
	// RequestTimeoutSeconds is the per-request timeout for scraping.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"20"`
	// UserAgent identifies the scraper to Transfermarkt.
	UserAgent string `mapstructure:"user_agent" default:"championship-pipeline/1.0 (non-commercial, educational use)"`
}

// FBRefRawPrefix is the object storage prefix for raw FBRef extracts.
func (p Pipeline) FBRefRawPrefix() string {
	return "fbref/championship_" + p.Season + "/raw"
}

// TransfermarktRawPrefix is the object storage prefix for raw Transfermarkt
// extracts.
func (p Pipeline) TransfermarktRawPrefix() string {
	return "transfermarkt/championship_" + p.Season + "/raw"
}

// CuratedPrefix is the object storage prefix for curated semantic tables.
func (p Pipeline) CuratedPrefix() string {
	return "curated"
}

// DimClubObjectName is the object name of the cached dim_club table.
func (p Pipeline) DimClubObjectName() string {
	return "utils/dim_club_" + p.Season + ".csv"
}

// FBRefPlayerObject is the object name of the raw FBRef player stats extract.
func (p Pipeline) FBRefPlayerObject() string {
	return p.FBRefRawPrefix() + "/player_standard_stats_" + p.Season + ".csv"
}

// FBRefSquadObject is the object name of the raw FBRef squad stats extract.
func (p Pipeline) FBRefSquadObject() string {
	return p.FBRefRawPrefix() + "/squad_standard_stats_" + p.Season + ".csv"
}

// LeagueTableObject is the object name of the raw league table extract.
func (p Pipeline) LeagueTableObject() string {
	return p.TransfermarktRawPrefix() + "/league_table_" + p.Season + ".csv"
}

// TransfersInObject is the object name of the raw transfers-in extract.
func (p Pipeline) TransfersInObject() string {
	return p.TransfermarktRawPrefix() + "/transfers_in_" + p.Season + ".csv"
}

// TransfersOutObject is the object name of the raw transfers-out extract.
func (p Pipeline) TransfersOutObject() string {
	return p.TransfermarktRawPrefix() + "/transfers_out_" + p.Season + ".csv"
}

// CuratedObject is the object name of one curated semantic table.
func (p Pipeline) CuratedObject(name string) string {
	return p.CuratedPrefix() + "/" + name + "_" + p.Season + ".csv"
}
