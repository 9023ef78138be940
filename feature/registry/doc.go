// Package registry implements the club-identity reconciliation core.
//
// Upstream sources (the Transfermarkt league table, the FBRef squad tables,
// the Transfermarkt transfer listings) each spell club names their own way.
// The registry holds the closed-world roster of clubs for one season together
// with one alias vocabulary per source, and resolves raw name strings to
// canonical clubs by exact, case-sensitive lookup. There is no fuzzy matching:
// an unknown name is an error, never a guess.
//
// # Components
//
//   - Registry: the validated, immutable roster plus per-source vocabularies.
//     Construction fails with AmbiguousAliasError when two clubs claim the
//     same alias within one vocabulary.
//   - Resolve: pure alias -> Club lookup with UnknownClubNameError failures.
//   - BuildTable: the dim_club projection (stable club_id 1..n, canonical
//     name, per-source raw names, slug key) used as the join key table by
//     every curated builder.
//   - Attacher: attaches club_id to arbitrary tables under a Strict or
//     Permissive policy and reports unresolved-row counts.
//   - Coverage: per-club presence check across the attached source tables,
//     used to spot vocabulary drift between seasons.
//
// The registry is built once per pipeline run and treated as immutable; all
// consumers receive it by reference.
package registry
