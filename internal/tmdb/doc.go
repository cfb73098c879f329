// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package tmdb fetches the TMDb "popular movies" list and turns it into
tag-scored catalog entries for the standard recommendation profile.

The list is cached for one hour (configurable). A failed fetch, or a missing
API key, is logged and yields an empty slice; the cache keeps whatever it held
before so a transient outage never erases a good list early.

Mapping rules:

	overview       -> description ("A compelling film from TMDb." when empty)
	release_date   -> year
	poster_path    -> {image_base}{size}{poster_path}
	vote_average   -> tag: challenge (> 7), comfort (> 6), light otherwise

Only entries with both a poster path and a release date are kept, and at
most MaxFilms of them.

Usage:

	f := tmdb.NewFetcher(cfg, logger)
	defer f.Close()
	films := f.FetchRemoteCatalog(ctx)
*/
package tmdb
