// Package tourio reads prepared location tables and writes finished tours
// as flat CSV files.
//
// It implements only the boundary of the external data-preparation and
// persistence collaborators: the optimizer core (packages geo and anneal)
// stays purely in-memory, and the host process decides when and where files
// are read or written.
//
// Formats:
//
//   - Locations: a headered CSV carrying the columns v_id, v_lat, v_lon
//     (the prepared county-seat table layout); the plain aliases id, lat,
//     lon are accepted too. Column order is free and extra columns are
//     ignored.
//
//   - Tours: a single v_id column, one location id per row, in tour order.
//
// Parse failures carry the offending line number wrapped around the package
// sentinels, so errors.Is still matches.
package tourio
