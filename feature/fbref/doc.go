// Package fbref extracts Championship standard-stats tables from a saved
// FBRef HTML snapshot.
//
// FBRef disallows scraping (robots + 403), so the page is downloaded by hand
// and read from disk. Two tables are extracted: the player standard stats
// table, which the site ships inside an HTML comment in div#all_stats_standard,
// and the squad standard stats table, which is a plain table inside
// div#div_stats_squads_standard_for. Cells are keyed by their data-stat
// attribute, then renamed to a tidy column schema.
package fbref
